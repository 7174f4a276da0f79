package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/application/ordering"
	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

func (a *App) placeOrder(ctx context.Context, s auth.Session) error {
	uc := a.deps.PlaceOrder
	if err := uc.Authorize(ctx, s.Login); err != nil {
		return err
	}
	a.println("Available Stores:")
	if _, err := uc.PrintStores(ctx, a.out); err != nil {
		return err
	}
	storeID, err := a.in.Int("Enter Store ID to place your order: ")
	if err != nil {
		return err
	}

	cart := ordering.NewCart()
	for {
		name, err := a.in.Text("Enter item name (or type 'done' to finish): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(name, "done") {
			break
		}
		qty, err := a.in.Int("Enter quantity: ")
		if err != nil {
			return err
		}
		item, err := uc.Quote(ctx, name)
		if err != nil {
			return err
		}
		if item == nil {
			a.println("Invalid item name. Please try again.")
			continue
		}
		if err := cart.Add(item, qty); err != nil {
			a.println("Quantity must be greater than zero. Please try again.")
			continue
		}
	}

	order, err := uc.Place(ctx, s.Login, storeID, cart)
	if errors.Is(err, domain.ErrItemNotFound) {
		a.printf("Error: %v. Order canceled.\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	a.printf("Order placed successfully! Total price: $%s\n", order.TotalPrice.StringFixed(2))
	a.printf("Order ID: %d\n", order.OrderID)
	return nil
}

func (a *App) viewAllOrders(ctx context.Context, s auth.Session) error {
	return a.printHistory(ctx, s, false)
}

func (a *App) viewRecentOrders(ctx context.Context, s auth.Session) error {
	return a.printHistory(ctx, s, true)
}

func (a *App) printHistory(ctx context.Context, s auth.Session, recentOnly bool) error {
	var buf bytes.Buffer
	res, err := a.deps.Orders.PrintHistory(ctx, s.Login, &buf, recentOnly)
	if err != nil {
		return err
	}
	switch {
	case res.AllCustomers && recentOnly:
		a.println("Displaying the 5 most recent customer orders:")
	case res.AllCustomers:
		a.println("Displaying all customer orders:")
	case recentOnly:
		a.println("Displaying your 5 most recent orders:")
	default:
		a.println("Displaying your order history:")
	}
	if res.Count == 0 {
		a.println("No orders found.")
		return nil
	}
	_, err = buf.WriteTo(a.out)
	return err
}

func (a *App) viewOrderInfo(ctx context.Context, s auth.Session) error {
	id, err := a.in.Int64("Enter the Order ID to view details: ")
	if err != nil {
		return err
	}
	d, err := a.deps.Orders.Detail(ctx, s.Login, id)
	if err != nil {
		return err
	}
	a.println("Order Details:")
	a.printf("Order ID: %d\n", d.Order.OrderID)
	a.printf("Customer: %s\n", d.Order.Login)
	a.printf("Timestamp: %s\n", d.Order.OrderTimestamp.Format("2006-01-02 15:04:05"))
	a.printf("Total Price: $%s\n", d.Order.TotalPrice.StringFixed(2))
	a.printf("Status: %s\n", d.Order.OrderStatus)
	a.println("\nItems in this order:")
	if len(d.Lines) == 0 {
		a.println("No items found for this order.")
		return nil
	}
	a.printf("%-25s %-10s\n", "Item Name", "Quantity")
	a.println("--------------------------------------")
	for _, l := range d.Lines {
		a.printf("%-25s %-10d\n", l.ItemName, l.Quantity)
	}
	return nil
}

func (a *App) updateOrderStatus(ctx context.Context, s auth.Session) error {
	var buf bytes.Buffer
	if _, err := a.deps.Orders.PrintStatusBoard(ctx, s.Login, &buf); err != nil {
		return err
	}
	a.println("Available Orders:")
	if _, err := buf.WriteTo(a.out); err != nil {
		return err
	}
	id, err := a.in.Int64("Enter the Order ID to update: ")
	if err != nil {
		return err
	}
	if _, err := a.deps.Orders.StatusTarget(ctx, s.Login, id); err != nil {
		return err
	}

	a.println("Available Status Options:")
	for i, st := range entity.OrderStatuses {
		a.printf("%d. %s\n", i+1, st)
	}
	choice, err := a.in.Int("Choose a new status: ")
	if err != nil {
		return err
	}
	status, ok := entity.StatusByChoice(choice)
	if !ok {
		return domain.ErrInvalidStatus
	}
	if err := a.deps.Orders.UpdateStatus(ctx, s.Login, id, status); err != nil {
		return err
	}
	a.println("Order status updated successfully!")
	return nil
}

func (a *App) exportReceipt(ctx context.Context, s auth.Session) error {
	id, err := a.in.Int64("Enter the Order ID to export: ")
	if err != nil {
		return err
	}
	path, err := a.deps.Receipts.Export(ctx, s.Login, id)
	if err != nil {
		return err
	}
	a.printf("Receipt saved to %s\n", path)
	return nil
}
