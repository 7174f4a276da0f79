package auth

import (
	"context"
	"fmt"

	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/access"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

// Guard autoriza acciones leyendo el rol actual de Users en cada llamada,
// así un cambio de rol hecho por un manager aplica en la siguiente acción.
type Guard struct {
	users repository.UserRepository
}

// NewGuard construye el guard.
func NewGuard(users repository.UserRepository) *Guard {
	return &Guard{users: users}
}

// Role lee y normaliza el rol del usuario. Cualquier fallo se envuelve en domain.ErrRoleLookup.
func (g *Guard) Role(ctx context.Context, login string) (entity.Role, error) {
	raw, err := g.users.GetRole(ctx, login)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRoleLookup, err)
	}
	role, ok := entity.ParseRole(raw)
	if !ok {
		return "", fmt.Errorf("%w: %w %q", domain.ErrRoleLookup, domain.ErrInvalidRole, raw)
	}
	return role, nil
}

// Require devuelve el rol si puede ejecutar action; si no, un *access.DeniedError.
func (g *Guard) Require(ctx context.Context, login string, action access.Action) (entity.Role, error) {
	role, err := g.Role(ctx, login)
	if err != nil {
		return "", err
	}
	if err := access.Authorize(action, role); err != nil {
		return role, err
	}
	return role, nil
}
