package usecase

import (
	"context"
	"strings"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/access"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

// UserAdminUseCase edición de cualquier usuario (solo managers).
type UserAdminUseCase struct {
	guard *auth.Guard
	users repository.UserRepository
}

// NewUserAdminUseCase construye el caso de uso.
func NewUserAdminUseCase(guard *auth.Guard, users repository.UserRepository) *UserAdminUseCase {
	return &UserAdminUseCase{guard: guard, users: users}
}

// Authorize verifica el permiso antes de pedir datos al usuario.
func (uc *UserAdminUseCase) Authorize(ctx context.Context, login string) error {
	_, err := uc.guard.Require(ctx, login, access.UpdateUser)
	return err
}

// Find obtiene el usuario target; ErrUserNotFound si no existe.
func (uc *UserAdminUseCase) Find(ctx context.Context, login, target string) (*entity.User, error) {
	if err := uc.Authorize(ctx, login); err != nil {
		return nil, err
	}
	return loadUser(ctx, uc.users, strings.TrimSpace(target))
}

// ChangePhone cambia el teléfono de target.
func (uc *UserAdminUseCase) ChangePhone(ctx context.Context, login, target, phone string) error {
	return uc.update(ctx, login, target, func(u *entity.User) error {
		u.PhoneNum = strings.TrimSpace(phone)
		return nil
	})
}

// ChangeFavorite cambia los favoritos de target.
func (uc *UserAdminUseCase) ChangeFavorite(ctx context.Context, login, target, favorite string) error {
	return uc.update(ctx, login, target, func(u *entity.User) error {
		u.FavoriteItems = strings.TrimSpace(favorite)
		return nil
	})
}

// ChangePassword cambia la contraseña de target.
func (uc *UserAdminUseCase) ChangePassword(ctx context.Context, login, target, password string) error {
	return uc.update(ctx, login, target, func(u *entity.User) error {
		return setPassword(u, password)
	})
}

// ChangeRole valida el rol (customer/driver/manager, sin distinguir mayúsculas) antes de tocar la fila.
func (uc *UserAdminUseCase) ChangeRole(ctx context.Context, login, target, role string) (entity.Role, error) {
	if err := uc.Authorize(ctx, login); err != nil {
		return "", err
	}
	r, ok := entity.ParseRole(role)
	if !ok {
		return "", domain.ErrInvalidRole
	}
	err := mutateUser(ctx, uc.users, strings.TrimSpace(target), func(u *entity.User) error {
		u.Role = r.Stored()
		return nil
	})
	if err != nil {
		return "", err
	}
	return r, nil
}

func (uc *UserAdminUseCase) update(ctx context.Context, login, target string, fn func(*entity.User) error) error {
	if err := uc.Authorize(ctx, login); err != nil {
		return err
	}
	return mutateUser(ctx, uc.users, strings.TrimSpace(target), fn)
}
