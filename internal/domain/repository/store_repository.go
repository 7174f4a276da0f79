package repository

import (
	"context"

	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

// StoreRepository lectura de sucursales.
type StoreRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Store, error)
}
