package ordering

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/application/ports"
	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/access"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
	"github.com/bradsaav/PizzaStore/pkg/logger"
)

// PlaceOrderUseCase arma y registra pedidos. La cabecera y todas las líneas se escriben
// en una sola transacción.
type PlaceOrderUseCase struct {
	guard    *auth.Guard
	items    repository.ItemRepository
	listings repository.ListingRepository
	tx       TxRunner
	events   ports.OrderEventPublisher
	log      *logger.Logger
	now      func() time.Time
}

// NewPlaceOrderUseCase construye el caso de uso. events nil equivale a no publicar.
func NewPlaceOrderUseCase(
	guard *auth.Guard,
	items repository.ItemRepository,
	listings repository.ListingRepository,
	tx TxRunner,
	events ports.OrderEventPublisher,
	log *logger.Logger,
) *PlaceOrderUseCase {
	if events == nil {
		events = ports.NoopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PlaceOrderUseCase{
		guard:    guard,
		items:    items,
		listings: listings,
		tx:       tx,
		events:   events,
		log:      log,
		now:      time.Now,
	}
}

// Authorize verifica el permiso antes de empezar a pedir datos.
func (uc *PlaceOrderUseCase) Authorize(ctx context.Context, login string) error {
	_, err := uc.guard.Require(ctx, login, access.PlaceOrder)
	return err
}

// PrintStores imprime id y dirección de las sucursales para elegir dónde pedir.
func (uc *PlaceOrderUseCase) PrintStores(ctx context.Context, w io.Writer) (int, error) {
	return uc.listings.PrintStores(ctx, w, false)
}

// Quote busca el item sin distinguir mayúsculas; nil, nil si no existe.
func (uc *PlaceOrderUseCase) Quote(ctx context.Context, name string) (*entity.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	return uc.items.GetByName(ctx, name)
}

// Place registra el pedido del carrito con estado "Order Received".
// Un carrito vacío devuelve ErrEmptyOrder sin tocar la base de datos. Si un item desapareció
// entre la cotización y el registro, la transacción se revierte con ErrItemNotFound.
func (uc *PlaceOrderUseCase) Place(ctx context.Context, login string, storeID int, cart *Cart) (*entity.Order, error) {
	if err := uc.Authorize(ctx, login); err != nil {
		return nil, err
	}
	if cart == nil || cart.Empty() {
		return nil, domain.ErrEmptyOrder
	}

	order := &entity.Order{
		Login:          login,
		StoreID:        storeID,
		TotalPrice:     cart.Total(),
		OrderTimestamp: uc.now(),
		OrderStatus:    entity.StatusOrderReceived,
	}
	var placed []entity.OrderLine

	err := uc.tx.Run(ctx, func(orders repository.OrderRepository, items repository.ItemRepository) error {
		// ── 1. Cabecera con id de secuencia ──────────────────────────────────
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		// ── 2. Líneas con el nombre canónico ─────────────────────────────────
		for _, l := range cart.Lines() {
			it, err := items.GetByName(ctx, l.ItemName)
			if err != nil {
				return err
			}
			if it == nil {
				return fmt.Errorf("%w: %s", domain.ErrItemNotFound, l.ItemName)
			}
			line := entity.OrderLine{OrderID: order.OrderID, ItemName: it.ItemName, Quantity: l.Quantity}
			if err := orders.AddLine(ctx, line); err != nil {
				return err
			}
			placed = append(placed, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("order_id", order.OrderID).
		Str("login", login).
		Int("store_id", storeID).
		Str("total", order.TotalPrice.StringFixed(2)).
		Msg("pedido registrado")

	total := order.TotalPrice
	ev := ports.OrderEvent{
		Type:       ports.EventOrderPlaced,
		OrderID:    order.OrderID,
		Login:      login,
		StoreID:    storeID,
		Status:     string(order.OrderStatus),
		Total:      &total,
		OccurredAt: order.OrderTimestamp,
	}
	for _, l := range placed {
		ev.Lines = append(ev.Lines, ports.OrderEventLine{ItemName: l.ItemName, Quantity: l.Quantity})
	}
	if err := uc.events.Publish(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Int64("order_id", order.OrderID).Msg("no se pudo publicar order.placed")
	}
	return order, nil
}
