package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q    Querier
	exec *Executor
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q, exec: NewExecutor(q)}
}

// Create persiste un nuevo usuario. favoriteItems vacío se guarda como NULL.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO Users (login, password, phoneNum, role, favoriteItems)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))`
	_, err := r.exec.ExecuteUpdate(ctx, query,
		user.Login, user.Password, user.PhoneNum, user.Role, user.FavoriteItems,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLoginAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByLogin obtiene un usuario por login.
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*entity.User, error) {
	query := `
		SELECT login, password, COALESCE(phoneNum, ''), TRIM(COALESCE(role, '')), COALESCE(favoriteItems, '')
		FROM Users WHERE login = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, login).Scan(&u.Login, &u.Password, &u.PhoneNum, &u.Role, &u.FavoriteItems)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	return &u, nil
}

// Exists indica si el login ya está registrado.
func (r *UserRepo) Exists(ctx context.Context, login string) (bool, error) {
	n, err := r.exec.ExecuteQuery(ctx, `SELECT 1 FROM Users WHERE login = $1`, login)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return n > 0, nil
}

// Authenticate verifica login y contraseña.
func (r *UserRepo) Authenticate(ctx context.Context, login, password string) (bool, error) {
	n, err := r.exec.ExecuteQuery(ctx, `SELECT 1 FROM Users WHERE login = $1 AND password = $2`, login, password)
	if err != nil {
		return false, fmt.Errorf("authenticate user: %w", err)
	}
	return n > 0, nil
}

// GetRole lee el rol actual del usuario.
func (r *UserRepo) GetRole(ctx context.Context, login string) (string, error) {
	res, err := r.exec.ExecuteQueryAndReturnResult(ctx, `SELECT role FROM Users WHERE login = $1`, login)
	if err != nil {
		return "", fmt.Errorf("get user role: %w", err)
	}
	if len(res) == 0 {
		return "", domain.ErrUserNotFound
	}
	return res[0][0], nil
}

// Update actualiza contraseña, teléfono, rol y favoritos del usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE Users SET password = $2, phoneNum = $3, role = $4, favoriteItems = NULLIF($5, '')
		WHERE login = $1`
	n, err := r.exec.ExecuteUpdate(ctx, query,
		user.Login, user.Password, user.PhoneNum, user.Role, user.FavoriteItems,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
