package repository

import (
	"context"

	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Todas las búsquedas por nombre ignoran mayúsculas.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	// GetByName devuelve el item con su nombre canónico, o nil, nil si no existe.
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	// Update guarda item sobre la fila cuyo nombre es originalName.
	Update(ctx context.Context, originalName string, item *entity.Item) error
	// CountOrderReferences cuenta las líneas de pedido que usan el item.
	CountOrderReferences(ctx context.Context, name string) (int, error)
	Delete(ctx context.Context, name string) error
}
