package ports

import (
	"context"

	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

// Receipt datos necesarios para representar un pedido en PDF.
type Receipt struct {
	Order entity.Order
	Store *entity.Store // nil si la sucursal ya no existe
	Lines []entity.OrderLine
}

// ReceiptGenerator genera el comprobante de un pedido.
// Cualquier adaptador (maroto, mock) debe implementar esta interfaz.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, r Receipt) ([]byte, error)
}
