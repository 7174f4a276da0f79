// Package memstore implementa en memoria todos los puertos de persistencia, para tests
// de casos de uso y del CLI sin PostgreSQL.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

// Store base de datos en memoria. Los adaptadores devueltos por Users, Items, etc.
// comparten el mismo estado.
type Store struct {
	mu     sync.Mutex
	failed error

	users  map[string]entity.User
	items  map[string]entity.Item // clave: nombre en minúsculas
	stores map[int]entity.Store
	orders map[int64]entity.Order
	lines  map[int64][]entity.OrderLine
	seq    int64
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		users:  make(map[string]entity.User),
		items:  make(map[string]entity.Item),
		stores: make(map[int]entity.Store),
		orders: make(map[int64]entity.Order),
		lines:  make(map[int64][]entity.OrderLine),
	}
}

// FailWith hace que toda operación posterior devuelva err (nil lo desactiva).
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = err
}

// ── Seed ──────────────────────────────────────────────────────────────────────

// AddUser inserta un usuario con el rol tal cual se guardaría.
func (s *Store) AddUser(login, password, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[login] = entity.User{Login: login, Password: password, Role: role}
}

// AddItem inserta un item; price en formato decimal ("9.99").
func (s *Store) AddItem(name, typ, price string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[strings.ToLower(name)] = entity.Item{ItemName: name, TypeOfItem: typ, Price: decimal.RequireFromString(price)}
}

// AddStore inserta una sucursal.
func (s *Store) AddStore(id int, address, city, state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores[id] = entity.Store{StoreID: id, Address: address, City: city, State: state, IsOpen: "yes", ReviewScore: "4.5"}
}

// AddOrder inserta un pedido ya existente con sus líneas y devuelve su id.
func (s *Store) AddOrder(o entity.Order, lines ...entity.OrderLine) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	o.OrderID = s.seq
	s.orders[o.OrderID] = o
	for _, l := range lines {
		l.OrderID = o.OrderID
		s.lines[o.OrderID] = append(s.lines[o.OrderID], l)
	}
	return o.OrderID
}

// ── Inspección ───────────────────────────────────────────────────────────────

// User copia del usuario guardado.
func (s *Store) User(login string) (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[login]
	return u, ok
}

// Item copia del item guardado (nombre sin distinguir mayúsculas).
func (s *Store) Item(name string) (entity.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[strings.ToLower(name)]
	return it, ok
}

// Orders pedidos guardados ordenados por id.
func (s *Store) Orders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out
}

// OrderLines líneas guardadas del pedido, ordenadas por nombre.
func (s *Store) OrderLines(id int64) []entity.OrderLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLines(id)
}

func (s *Store) sortedLines(id int64) []entity.OrderLine {
	out := append([]entity.OrderLine(nil), s.lines[id]...)
	sort.Slice(out, func(i, j int) bool { return out[i].ItemName < out[j].ItemName })
	return out
}

// ── Transacciones ────────────────────────────────────────────────────────────

type snapshot struct {
	users  map[string]entity.User
	items  map[string]entity.Item
	orders map[int64]entity.Order
	lines  map[int64][]entity.OrderLine
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		users:  make(map[string]entity.User, len(s.users)),
		items:  make(map[string]entity.Item, len(s.items)),
		orders: make(map[int64]entity.Order, len(s.orders)),
		lines:  make(map[int64][]entity.OrderLine, len(s.lines)),
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.items {
		snap.items[k] = v
	}
	for k, v := range s.orders {
		snap.orders[k] = v
	}
	for k, v := range s.lines {
		snap.lines[k] = append([]entity.OrderLine(nil), v...)
	}
	return snap
}

// restore vuelve al snapshot. La secuencia no retrocede, igual que en PostgreSQL.
func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users, s.items, s.orders, s.lines = snap.users, snap.items, snap.orders, snap.lines
}

func (s *Store) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.failed
}
