package memstore

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

var _ repository.ListingRepository = (*ListingRepo)(nil)

// ListingRepo imprime con el mismo formato que el executor de PostgreSQL:
// cabecera con nombres de columna en minúsculas (solo si hay filas) y valores separados por tab.
type ListingRepo struct{ s *Store }

// Listings devuelve el adaptador de listados.
func (s *Store) Listings() *ListingRepo { return &ListingRepo{s: s} }

func (r *ListingRepo) PrintMenu(ctx context.Context, w io.Writer, f repository.MenuFilter) (int, error) {
	r.s.mu.Lock()
	if err := r.s.check(ctx); err != nil {
		r.s.mu.Unlock()
		return 0, err
	}
	var items []entity.Item
	for _, it := range r.s.items {
		if t := strings.TrimSpace(f.Type); t != "" && strings.TrimSpace(it.TypeOfItem) != t {
			continue
		}
		if f.MinPrice != nil && it.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && it.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		items = append(items, it)
	}
	r.s.mu.Unlock()

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch f.Sort {
		case repository.MenuSortPriceAsc:
			if !a.Price.Equal(b.Price) {
				return a.Price.LessThan(b.Price)
			}
		case repository.MenuSortPriceDesc:
			if !a.Price.Equal(b.Price) {
				return a.Price.GreaterThan(b.Price)
			}
		default:
			if a.TypeOfItem != b.TypeOfItem {
				return a.TypeOfItem < b.TypeOfItem
			}
			if !a.Price.Equal(b.Price) {
				return a.Price.LessThan(b.Price)
			}
		}
		return a.ItemName < b.ItemName
	})
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.ItemName, it.TypeOfItem, it.Price.StringFixed(2)})
	}
	return printTable(w, []string{"itemname", "typeofitem", "price"}, rows)
}

func (r *ListingRepo) PrintStores(ctx context.Context, w io.Writer, detailed bool) (int, error) {
	r.s.mu.Lock()
	if err := r.s.check(ctx); err != nil {
		r.s.mu.Unlock()
		return 0, err
	}
	stores := make([]entity.Store, 0, len(r.s.stores))
	for _, st := range r.s.stores {
		stores = append(stores, st)
	}
	r.s.mu.Unlock()

	sort.Slice(stores, func(i, j int) bool { return stores[i].StoreID < stores[j].StoreID })
	cols := []string{"storeid", "address"}
	if detailed {
		cols = append(cols, "city", "state", "isopen", "reviewscore")
	}
	rows := make([][]string, 0, len(stores))
	for _, st := range stores {
		row := []string{strconv.Itoa(st.StoreID), st.Address}
		if detailed {
			row = append(row, st.City, st.State, st.IsOpen, st.ReviewScore)
		}
		rows = append(rows, row)
	}
	return printTable(w, cols, rows)
}

func (r *ListingRepo) PrintOrders(ctx context.Context, w io.Writer, l repository.OrderListing) (int, error) {
	r.s.mu.Lock()
	if err := r.s.check(ctx); err != nil {
		r.s.mu.Unlock()
		return 0, err
	}
	var orders []entity.Order
	for _, o := range r.s.orders {
		if l.Login != "" && o.Login != l.Login {
			continue
		}
		orders = append(orders, o)
	}
	r.s.mu.Unlock()

	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID > orders[j].OrderID })
	if l.Limit > 0 && len(orders) > l.Limit {
		orders = orders[:l.Limit]
	}
	cols := []string{"orderid", "login", "storeid", "totalprice", "orderstatus"}
	if l.Login != "" {
		cols = []string{"orderid", "storeid", "totalprice", "orderstatus"}
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		row := []string{strconv.FormatInt(o.OrderID, 10)}
		if l.Login == "" {
			row = append(row, o.Login)
		}
		row = append(row, strconv.Itoa(o.StoreID), o.TotalPrice.StringFixed(2), string(o.OrderStatus))
		rows = append(rows, row)
	}
	return printTable(w, cols, rows)
}

func printTable(w io.Writer, cols []string, rows [][]string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
		return 0, err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}
