package access_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/access"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

func TestAllowed_TablaDeRoles(t *testing.T) {
	customer, driver, manager := entity.RoleCustomer, entity.RoleDriver, entity.RoleManager

	cases := []struct {
		action access.Action
		role   entity.Role
		want   bool
	}{
		{access.PlaceOrder, customer, true},
		{access.ViewProfile, driver, true},
		{access.ViewOwnOrders, manager, true},
		{access.UpdateOrderStatus, customer, false},
		{access.UpdateOrderStatus, driver, true},
		{access.UpdateOrderStatus, manager, true},
		{access.ViewAnyOrder, customer, false},
		{access.ViewAnyOrder, driver, true},
		{access.UpdateMenu, driver, false},
		{access.UpdateMenu, manager, true},
		{access.UpdateUser, customer, false},
		{access.UpdateUser, manager, true},
		{access.Action("drop_tables"), manager, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, access.Allowed(c.action, c.role), "%s/%s", c.action, c.role)
	}
}

// Un rol vacío (no reconocido en Users) no pasa ni las acciones comunes.
func TestAllowed_RolDesconocido(t *testing.T) {
	assert.False(t, access.Allowed(access.PlaceOrder, entity.Role("")))
}

func TestAuthorize_DeniedError(t *testing.T) {
	err := access.Authorize(access.UpdateMenu, entity.RoleCustomer)
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrForbidden))
	var denied *access.DeniedError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, access.UpdateMenu, denied.Action)
	assert.Equal(t, "Permission denied. Only managers can update the menu.", err.Error())

	assert.NoError(t, access.Authorize(access.UpdateMenu, entity.RoleManager))
}
