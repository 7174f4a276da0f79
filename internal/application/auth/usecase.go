package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
	"github.com/bradsaav/PizzaStore/pkg/logger"
)

// Session usuario autenticado de la sesión interactiva. El valor cero es "sin sesión".
// Se pasa explícitamente a cada handler; no hay estado global.
type Session struct {
	Login string
	ID    string // correlación en logs
}

// Active indica si hay un usuario autenticado.
func (s Session) Active() bool { return s.Login != "" }

// RegisterRequest datos para crear un usuario.
type RegisterRequest struct {
	Login    string
	Password string
	PhoneNum string
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Login    string
	Password string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	users repository.UserRepository
	log   *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{users: users, log: log}
}

// Register crea un usuario con rol Customer. Devuelve ErrLoginAlreadyExists si el login ya existe;
// en ese caso no se inserta nada.
func (uc *AuthUseCase) Register(ctx context.Context, in RegisterRequest) error {
	login := strings.TrimSpace(in.Login)
	if login == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	exists, err := uc.users.Exists(ctx, login)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrLoginAlreadyExists
	}
	user := &entity.User{
		Login:    login,
		Password: in.Password,
		PhoneNum: strings.TrimSpace(in.PhoneNum),
		Role:     entity.RoleCustomer.Stored(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return err
	}
	uc.log.Info().Str("login", login).Msg("usuario registrado")
	return nil
}

// Login verifica login/password contra Users y abre la sesión.
// Con una sesión activa se rechaza sin consultar la base de datos.
func (uc *AuthUseCase) Login(ctx context.Context, current Session, in LoginRequest) (Session, error) {
	if current.Active() {
		return current, domain.ErrAlreadyLoggedIn
	}
	login := strings.TrimSpace(in.Login)
	ok, err := uc.users.Authenticate(ctx, login, in.Password)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, domain.ErrInvalidCredentials
	}
	s := Session{Login: login, ID: uuid.New().String()}
	uc.log.Info().Str("login", login).Str("session_id", s.ID).Msg("sesión iniciada")
	return s, nil
}

// Logout cierra la sesión y devuelve el valor cero.
func (uc *AuthUseCase) Logout(s Session) Session {
	if s.Active() {
		uc.log.Info().Str("login", s.Login).Str("session_id", s.ID).Msg("sesión cerrada")
	}
	return Session{}
}
