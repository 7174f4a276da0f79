package ordering

import (
	"context"

	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda nada escrito: ni cabecera ni líneas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orders repository.OrderRepository,
		items repository.ItemRepository,
	) error) error
}
