package cli

import (
	"errors"
	"fmt"

	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/access"
)

// userMessages mensaje para cada error de dominio esperado. El orden importa:
// el primero que coincide con errors.Is gana.
var userMessages = []struct {
	err error
	msg string
}{
	{domain.ErrRoleLookup, "Error retrieving user role."},
	{domain.ErrLoginAlreadyExists, "Username already exists. Please choose a different one."},
	{domain.ErrInvalidCredentials, "Invalid login or password."},
	{domain.ErrOrderNotFound, "Order not found."},
	{domain.ErrUserNotFound, "User not found."},
	{domain.ErrItemInUse, "Cannot delete item. It is associated with existing orders."},
	{domain.ErrEmptyOrder, "Order canceled. No items were added."},
	{domain.ErrItemNotFound, "Item not found."},
	{domain.ErrStoreNotFound, "Store not found. Order canceled."},
	{domain.ErrInvalidRole, "Invalid role. Please enter 'customer', 'driver', or 'manager'."},
	{domain.ErrInvalidStatus, "Invalid status choice. Please try again."},
	{domain.ErrDuplicate, "An item with that name already exists."},
	{domain.ErrInvalidInput, "Invalid input. Nothing was changed."},
}

// userMessage traduce err a un mensaje para el usuario; ok=false si es un error inesperado.
func userMessage(err error) (string, bool) {
	var denied *access.DeniedError
	if errors.As(err, &denied) {
		return denied.Error(), true
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	return "", false
}

// report muestra el error sin terminar la sesión. Los inesperados (base de datos, disco) se registran.
func (a *App) report(err error) {
	if msg, ok := userMessage(err); ok {
		a.println(msg)
		return
	}
	a.log.Error().Err(err).Msg("operación fallida")
	fmt.Fprintf(a.errOut, "Error: %v\n", err)
}
