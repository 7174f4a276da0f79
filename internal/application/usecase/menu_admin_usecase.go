package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/access"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

// CreateItemRequest datos de un item nuevo.
type CreateItemRequest struct {
	ItemName    string
	TypeOfItem  string
	Price       decimal.Decimal
	Ingredients string
	Description string
}

// MenuAdminUseCase mantenimiento del menú (solo managers). Cada operación relee el rol.
type MenuAdminUseCase struct {
	guard *auth.Guard
	items repository.ItemRepository
}

// NewMenuAdminUseCase construye el caso de uso.
func NewMenuAdminUseCase(guard *auth.Guard, items repository.ItemRepository) *MenuAdminUseCase {
	return &MenuAdminUseCase{guard: guard, items: items}
}

// Authorize verifica el permiso antes de pedir datos al usuario.
func (uc *MenuAdminUseCase) Authorize(ctx context.Context, login string) error {
	_, err := uc.guard.Require(ctx, login, access.UpdateMenu)
	return err
}

// Find busca un item por nombre sin distinguir mayúsculas; nil, nil si no existe.
func (uc *MenuAdminUseCase) Find(ctx context.Context, login, name string) (*entity.Item, error) {
	if err := uc.Authorize(ctx, login); err != nil {
		return nil, err
	}
	return uc.items.GetByName(ctx, strings.TrimSpace(name))
}

// Create agrega un item. Nombre y tipo son obligatorios y el precio no puede ser negativo.
func (uc *MenuAdminUseCase) Create(ctx context.Context, login string, in CreateItemRequest) (*entity.Item, error) {
	if err := uc.Authorize(ctx, login); err != nil {
		return nil, err
	}
	item := &entity.Item{
		ItemName:    strings.TrimSpace(in.ItemName),
		TypeOfItem:  strings.TrimSpace(in.TypeOfItem),
		Price:       in.Price,
		Ingredients: strings.TrimSpace(in.Ingredients),
		Description: strings.TrimSpace(in.Description),
	}
	if item.ItemName == "" || item.TypeOfItem == "" || !entity.ValidPrice(item.Price) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.items.GetByName(ctx, item.ItemName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update aplica el patch sobre el item con ese nombre y devuelve el item actualizado.
func (uc *MenuAdminUseCase) Update(ctx context.Context, login, name string, patch entity.ItemPatch) (*entity.Item, error) {
	if err := uc.Authorize(ctx, login); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, domain.ErrInvalidInput
	}
	if patch.Price != nil && !entity.ValidPrice(*patch.Price) {
		return nil, domain.ErrInvalidInput
	}
	if patch.TypeOfItem != nil && strings.TrimSpace(*patch.TypeOfItem) == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	patch.Apply(item)
	if err := uc.items.Update(ctx, item.ItemName, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete elimina el item salvo que alguna línea de pedido lo referencie (ErrItemInUse).
func (uc *MenuAdminUseCase) Delete(ctx context.Context, login, name string) error {
	if err := uc.Authorize(ctx, login); err != nil {
		return err
	}
	item, err := uc.items.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	refs, err := uc.items.CountOrderReferences(ctx, item.ItemName)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrItemInUse
	}
	return uc.items.Delete(ctx, item.ItemName)
}
