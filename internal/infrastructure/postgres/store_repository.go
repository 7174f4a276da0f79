package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo lectura de Store.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// GetByID obtiene una sucursal; nil, nil si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id int) (*entity.Store, error) {
	query := `
		SELECT storeID, COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''),
		       COALESCE(isOpen::text, ''), COALESCE(reviewScore::text, '')
		FROM Store WHERE storeID = $1`
	var s entity.Store
	err := r.q.QueryRow(ctx, query, id).Scan(&s.StoreID, &s.Address, &s.City, &s.State, &s.IsOpen, &s.ReviewScore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}
