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

// ProfileUseCase el usuario consulta y edita su propio perfil.
type ProfileUseCase struct {
	guard *auth.Guard
	users repository.UserRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(guard *auth.Guard, users repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{guard: guard, users: users}
}

// View devuelve el perfil del usuario de la sesión.
func (uc *ProfileUseCase) View(ctx context.Context, login string) (*entity.User, error) {
	if _, err := uc.guard.Require(ctx, login, access.ViewProfile); err != nil {
		return nil, err
	}
	return loadUser(ctx, uc.users, login)
}

// ChangeFavorite reemplaza los items favoritos.
func (uc *ProfileUseCase) ChangeFavorite(ctx context.Context, login, favorite string) error {
	return uc.update(ctx, login, func(u *entity.User) error {
		u.FavoriteItems = strings.TrimSpace(favorite)
		return nil
	})
}

// ChangePhone reemplaza el teléfono.
func (uc *ProfileUseCase) ChangePhone(ctx context.Context, login, phone string) error {
	return uc.update(ctx, login, func(u *entity.User) error {
		u.PhoneNum = strings.TrimSpace(phone)
		return nil
	})
}

// ChangePassword reemplaza la contraseña; no puede quedar vacía.
func (uc *ProfileUseCase) ChangePassword(ctx context.Context, login, password string) error {
	return uc.update(ctx, login, func(u *entity.User) error {
		return setPassword(u, password)
	})
}

func (uc *ProfileUseCase) update(ctx context.Context, login string, fn func(*entity.User) error) error {
	if _, err := uc.guard.Require(ctx, login, access.UpdateProfile); err != nil {
		return err
	}
	return mutateUser(ctx, uc.users, login, fn)
}

func loadUser(ctx context.Context, users repository.UserRepository, login string) (*entity.User, error) {
	u, err := users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func mutateUser(ctx context.Context, users repository.UserRepository, login string, fn func(*entity.User) error) error {
	u, err := loadUser(ctx, users, login)
	if err != nil {
		return err
	}
	if err := fn(u); err != nil {
		return err
	}
	return users.Update(ctx, u)
}

func setPassword(u *entity.User, password string) error {
	if password == "" {
		return domain.ErrInvalidInput
	}
	u.Password = password
	return nil
}
