package postgres

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

var _ repository.ListingRepository = (*ListingRepo)(nil)

// ListingRepo listados impresos directamente desde el resultado de la consulta.
type ListingRepo struct {
	exec *Executor
}

// NewListingRepository construye el adaptador.
func NewListingRepository(q Querier) *ListingRepo {
	return &ListingRepo{exec: NewExecutor(q)}
}

// PrintMenu imprime los items del menú según el filtro.
func (r *ListingRepo) PrintMenu(ctx context.Context, w io.Writer, f repository.MenuFilter) (int, error) {
	query, args := menuQuery(f)
	n, err := r.exec.ExecuteQueryAndPrintResult(ctx, w, query, args...)
	if err != nil {
		return 0, fmt.Errorf("list menu: %w", err)
	}
	return n, nil
}

// PrintStores imprime las sucursales; detailed agrega ciudad, estado, apertura y reseñas.
func (r *ListingRepo) PrintStores(ctx context.Context, w io.Writer, detailed bool) (int, error) {
	query := `SELECT storeID, address FROM Store ORDER BY storeID`
	if detailed {
		query = `SELECT storeID, address, city, state, isOpen, reviewScore FROM Store ORDER BY storeID`
	}
	n, err := r.exec.ExecuteQueryAndPrintResult(ctx, w, query)
	if err != nil {
		return 0, fmt.Errorf("list stores: %w", err)
	}
	return n, nil
}

// PrintOrders imprime pedidos del más nuevo al más viejo.
func (r *ListingRepo) PrintOrders(ctx context.Context, w io.Writer, l repository.OrderListing) (int, error) {
	query, args := ordersQuery(l)
	n, err := r.exec.ExecuteQueryAndPrintResult(ctx, w, query, args...)
	if err != nil {
		return 0, fmt.Errorf("list orders: %w", err)
	}
	return n, nil
}

func menuQuery(f repository.MenuFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if t := strings.TrimSpace(f.Type); t != "" {
		args = append(args, t)
		conds = append(conds, fmt.Sprintf("TRIM(typeOfItem) = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT itemName, typeOfItem, price FROM Items")
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	switch f.Sort {
	case repository.MenuSortPriceAsc:
		b.WriteString(" ORDER BY price ASC, itemName")
	case repository.MenuSortPriceDesc:
		b.WriteString(" ORDER BY price DESC, itemName")
	default:
		b.WriteString(" ORDER BY typeOfItem, price, itemName")
	}
	return b.String(), args
}

func ordersQuery(l repository.OrderListing) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	if l.Login == "" {
		b.WriteString("SELECT orderID, login, storeID, totalPrice, orderStatus FROM FoodOrder")
	} else {
		args = append(args, l.Login)
		b.WriteString("SELECT orderID, storeID, totalPrice, orderStatus FROM FoodOrder WHERE login = $1")
	}
	b.WriteString(" ORDER BY orderID DESC")
	if l.Limit > 0 {
		args = append(args, l.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	return b.String(), args
}
