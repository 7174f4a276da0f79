package ordering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bradsaav/PizzaStore/internal/application/ports"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

// ReceiptUseCase exporta el comprobante PDF de un pedido.
// Aplica la misma regla de acceso que Detail.
type ReceiptUseCase struct {
	orders    *OrderUseCase
	stores    repository.StoreRepository
	generator ports.ReceiptGenerator
	dir       string
}

// NewReceiptUseCase construye el caso de uso. dir vacío = directorio actual.
func NewReceiptUseCase(orders *OrderUseCase, stores repository.StoreRepository, generator ports.ReceiptGenerator, dir string) *ReceiptUseCase {
	if dir == "" {
		dir = "."
	}
	return &ReceiptUseCase{orders: orders, stores: stores, generator: generator, dir: dir}
}

// Export genera order-<id>.pdf en el directorio configurado y devuelve la ruta.
func (uc *ReceiptUseCase) Export(ctx context.Context, login string, id int64) (string, error) {
	detail, err := uc.orders.Detail(ctx, login, id)
	if err != nil {
		return "", err
	}
	store, err := uc.stores.GetByID(ctx, detail.Order.StoreID)
	if err != nil {
		return "", err
	}
	pdf, err := uc.generator.GenerateReceipt(ctx, ports.Receipt{
		Order: detail.Order,
		Store: store,
		Lines: detail.Lines,
	})
	if err != nil {
		return "", fmt.Errorf("receipt: generación fallida: %w", err)
	}
	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		return "", fmt.Errorf("receipt: crear directorio: %w", err)
	}
	path := filepath.Join(uc.dir, fmt.Sprintf("order-%d.pdf", id))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("receipt: escribir archivo: %w", err)
	}
	return path, nil
}
