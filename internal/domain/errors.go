package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrLoginAlreadyExists = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrRoleLookup         = errors.New("error retrieving user role")
	ErrAlreadyLoggedIn    = errors.New("a session is already active")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForbidden          = errors.New("permission denied")
	ErrEmptyOrder         = errors.New("order canceled: no items were added")
	ErrItemNotFound       = errors.New("item not found")
	ErrItemInUse          = errors.New("item is associated with existing orders")
	ErrOrderNotFound      = errors.New("order not found")
	ErrStoreNotFound      = errors.New("store not found")
)
