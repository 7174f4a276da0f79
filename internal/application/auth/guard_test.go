package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/access"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/testutil/memstore"
)

func TestGuard_RoleLeidoEnCadaLlamada(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	db.AddUser("carol", "pw", "Customer ") // CHAR con relleno
	g := auth.NewGuard(db.Users())

	// Caso 1: customer no puede actualizar el menú
	_, err := g.Require(ctx, "carol", access.UpdateMenu)
	var denied *access.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "Permission denied. Only managers can update the menu.", err.Error())

	// Caso 2: tras promoverla, la siguiente acción ya ve el rol nuevo
	u, _ := db.User("carol")
	u.Role = "MANAGER"
	require.NoError(t, db.Users().Update(ctx, &u))
	role, err := g.Require(ctx, "carol", access.UpdateMenu)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, role)
}

func TestGuard_FallaLecturaDeRol(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	db.AddUser("dave", "pw", "chef")
	g := auth.NewGuard(db.Users())

	// Caso 1: usuario borrado
	_, err := g.Require(ctx, "nobody", access.ViewProfile)
	assert.ErrorIs(t, err, domain.ErrRoleLookup)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// Caso 2: rol no reconocido
	_, err = g.Require(ctx, "dave", access.ViewProfile)
	assert.ErrorIs(t, err, domain.ErrRoleLookup)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}
