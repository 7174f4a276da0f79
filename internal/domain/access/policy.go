// Package access concentra la tabla de autorización rol × acción del cliente.
// Los casos de uso leen el rol fresco de Users y preguntan aquí; ningún handler compara roles por su cuenta.
package access

import (
	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

// Action acción del menú sujeta a autorización.
type Action string

const (
	ViewProfile       Action = "view_profile"
	UpdateProfile     Action = "update_profile"
	BrowseMenu        Action = "browse_menu"
	ViewStores        Action = "view_stores"
	PlaceOrder        Action = "place_order"
	ViewOwnOrders     Action = "view_own_orders"
	ViewAllOrders     Action = "view_all_orders"
	ViewAnyOrder      Action = "view_any_order"
	UpdateOrderStatus Action = "update_order_status"
	UpdateMenu        Action = "update_menu"
	UpdateUser        Action = "update_user"
)

type rule struct {
	roles  []entity.Role // nil = cualquier usuario autenticado
	denial string
}

var anyRole = []entity.Role{entity.RoleCustomer, entity.RoleDriver, entity.RoleManager}

var policy = map[Action]rule{
	ViewProfile:       {roles: anyRole},
	UpdateProfile:     {roles: anyRole},
	BrowseMenu:        {roles: anyRole},
	ViewStores:        {roles: anyRole},
	PlaceOrder:        {roles: anyRole},
	ViewOwnOrders:     {roles: anyRole},
	ViewAllOrders:     {roles: []entity.Role{entity.RoleDriver, entity.RoleManager}, denial: "Only drivers and managers can view all orders."},
	ViewAnyOrder:      {roles: []entity.Role{entity.RoleDriver, entity.RoleManager}, denial: "You can only view your own orders."},
	UpdateOrderStatus: {roles: []entity.Role{entity.RoleDriver, entity.RoleManager}, denial: "Only drivers and managers can update order status."},
	UpdateMenu:        {roles: []entity.Role{entity.RoleManager}, denial: "Only managers can update the menu."},
	UpdateUser:        {roles: []entity.Role{entity.RoleManager}, denial: "Only managers can update user roles."},
}

// Allowed devuelve true si role puede ejecutar action. Acciones desconocidas se niegan.
func Allowed(action Action, role entity.Role) bool {
	r, ok := policy[action]
	if !ok {
		return false
	}
	for _, allowed := range r.roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Authorize devuelve nil o un *DeniedError.
func Authorize(action Action, role entity.Role) error {
	if Allowed(action, role) {
		return nil
	}
	return &DeniedError{Action: action, Role: role}
}

// DeniedError negación de acceso; errors.Is(err, domain.ErrForbidden) es true.
type DeniedError struct {
	Action Action
	Role   entity.Role
}

func (e *DeniedError) Error() string {
	if r, ok := policy[e.Action]; ok && r.denial != "" {
		return "Permission denied. " + r.denial
	}
	return "Permission denied."
}

func (e *DeniedError) Is(target error) bool { return target == domain.ErrForbidden }
