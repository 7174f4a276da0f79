package repository

import (
	"context"

	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByLogin devuelve nil, nil si no existe. La comparación de login es exacta.
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	Exists(ctx context.Context, login string) (bool, error)
	// Authenticate compara login y contraseña en la base de datos (texto plano).
	Authenticate(ctx context.Context, login, password string) (bool, error)
	// GetRole devuelve el rol guardado; ErrUserNotFound si el login no existe.
	GetRole(ctx context.Context, login string) (string, error)
	Update(ctx context.Context, user *entity.User) error
}
