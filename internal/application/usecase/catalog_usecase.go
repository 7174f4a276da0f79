package usecase

import (
	"context"
	"io"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/access"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

// CatalogUseCase listados de menú y sucursales para cualquier usuario autenticado.
type CatalogUseCase struct {
	guard    *auth.Guard
	listings repository.ListingRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(guard *auth.Guard, listings repository.ListingRepository) *CatalogUseCase {
	return &CatalogUseCase{guard: guard, listings: listings}
}

// PrintMenu imprime el menú filtrado/ordenado. Un rango con mínimo mayor que el máximo es ErrInvalidInput.
func (uc *CatalogUseCase) PrintMenu(ctx context.Context, login string, w io.Writer, f repository.MenuFilter) (int, error) {
	if _, err := uc.guard.Require(ctx, login, access.BrowseMenu); err != nil {
		return 0, err
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return 0, domain.ErrInvalidInput
	}
	return uc.listings.PrintMenu(ctx, w, f)
}

// PrintStores imprime todas las sucursales con su detalle.
func (uc *CatalogUseCase) PrintStores(ctx context.Context, login string, w io.Writer) (int, error) {
	if _, err := uc.guard.Require(ctx, login, access.ViewStores); err != nil {
		return 0, err
	}
	return uc.listings.PrintStores(ctx, w, true)
}
