package repository

import (
	"context"

	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para FoodOrder e ItemsInOrder.
type OrderRepository interface {
	// Create inserta la cabecera con id de secuencia y lo asigna a order.OrderID.
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	// AddLine inserta la línea o suma la cantidad si (orderID, itemName) ya existe.
	AddLine(ctx context.Context, line entity.OrderLine) error
	Lines(ctx context.Context, orderID int64) ([]entity.OrderLine, error)
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error
}
