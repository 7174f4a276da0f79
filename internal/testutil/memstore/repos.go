package memstore

import (
	"context"
	"strings"

	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

var (
	_ repository.UserRepository  = (*UserRepo)(nil)
	_ repository.ItemRepository  = (*ItemRepo)(nil)
	_ repository.StoreRepository = (*StoreRepo)(nil)
	_ repository.OrderRepository = (*OrderRepo)(nil)
)

// UserRepo adaptador en memoria de UserRepository.
type UserRepo struct{ s *Store }

// Users devuelve el adaptador de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	if _, ok := r.s.users[u.Login]; ok {
		return domain.ErrLoginAlreadyExists
	}
	r.s.users[u.Login] = *u
	return nil
}

func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	u, ok := r.s.users[login]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) Exists(ctx context.Context, login string) (bool, error) {
	u, err := r.GetByLogin(ctx, login)
	return u != nil, err
}

func (r *UserRepo) Authenticate(ctx context.Context, login, password string) (bool, error) {
	u, err := r.GetByLogin(ctx, login)
	if err != nil || u == nil {
		return false, err
	}
	return u.Password == password, nil
}

func (r *UserRepo) GetRole(ctx context.Context, login string) (string, error) {
	u, err := r.GetByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrUserNotFound
	}
	return u.Role, nil
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	if _, ok := r.s.users[u.Login]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.users[u.Login] = *u
	return nil
}

// ItemRepo adaptador en memoria de ItemRepository.
type ItemRepo struct{ s *Store }

// Items devuelve el adaptador de items.
func (s *Store) Items() *ItemRepo { return &ItemRepo{s: s} }

func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	key := strings.ToLower(it.ItemName)
	if _, ok := r.s.items[key]; ok {
		return domain.ErrDuplicate
	}
	r.s.items[key] = *it
	return nil
}

func (r *ItemRepo) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	it, ok := r.s.items[strings.ToLower(name)]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *ItemRepo) Update(ctx context.Context, originalName string, it *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	key := strings.ToLower(originalName)
	cur, ok := r.s.items[key]
	if !ok || cur.ItemName != originalName {
		return domain.ErrItemNotFound
	}
	updated := *it
	updated.ItemName = cur.ItemName
	r.s.items[key] = updated
	return nil
}

func (r *ItemRepo) CountOrderReferences(ctx context.Context, name string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return 0, err
	}
	n := 0
	for _, lines := range r.s.lines {
		for _, l := range lines {
			if strings.EqualFold(l.ItemName, name) {
				n++
			}
		}
	}
	return n, nil
}

func (r *ItemRepo) Delete(ctx context.Context, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	key := strings.ToLower(name)
	if _, ok := r.s.items[key]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.s.items, key)
	return nil
}

// StoreRepo adaptador en memoria de StoreRepository.
type StoreRepo struct{ s *Store }

// Stores devuelve el adaptador de sucursales.
func (s *Store) Stores() *StoreRepo { return &StoreRepo{s: s} }

func (r *StoreRepo) GetByID(ctx context.Context, id int) (*entity.Store, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	st, ok := r.s.stores[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

// OrderRepo adaptador en memoria de OrderRepository.
type OrderRepo struct{ s *Store }

// OrderRepository devuelve el adaptador de pedidos.
func (s *Store) OrderRepository() *OrderRepo { return &OrderRepo{s: s} }

// Create valida la sucursal como lo haría la llave foránea.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	if _, ok := r.s.stores[o.StoreID]; !ok {
		return domain.ErrStoreNotFound
	}
	r.s.seq++
	o.OrderID = r.s.seq
	r.s.orders[o.OrderID] = *o
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *OrderRepo) AddLine(ctx context.Context, line entity.OrderLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	lines := r.s.lines[line.OrderID]
	for i := range lines {
		if lines[i].ItemName == line.ItemName {
			lines[i].Quantity += line.Quantity
			return nil
		}
	}
	r.s.lines[line.OrderID] = append(lines, line)
	return nil
}

func (r *OrderRepo) Lines(ctx context.Context, id int64) ([]entity.OrderLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return nil, err
	}
	return r.s.sortedLines(id), nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx); err != nil {
		return err
	}
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.OrderStatus = status
	r.s.orders[id] = o
	return nil
}

// TxRunner snapshot/restore sobre el store: si fn falla, nada de lo escrito queda.
type TxRunner struct{ s *Store }

// Tx devuelve el runner transaccional.
func (s *Store) Tx() *TxRunner { return &TxRunner{s: s} }

func (t *TxRunner) Run(ctx context.Context, fn func(
	orders repository.OrderRepository,
	items repository.ItemRepository,
) error) error {
	snap := t.s.snapshot()
	if err := fn(t.s.OrderRepository(), t.s.Items()); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}
