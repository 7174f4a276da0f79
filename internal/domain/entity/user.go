package entity

import "strings"

// Role rol de un usuario; decide qué acciones del menú puede ejecutar.
type Role string

// Roles válidos para User (forma normalizada, minúsculas).
const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleManager  Role = "manager"
)

// ParseRole normaliza el valor guardado en Users.role (puede venir con mayúsculas o relleno de CHAR).
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleDriver, RoleManager:
		return r, true
	default:
		return "", false
	}
}

// Stored devuelve la forma en que el rol se persiste ("Customer", "Driver", "Manager").
func (r Role) Stored() string {
	if r == "" {
		return ""
	}
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}

// User representa una fila de Users. Login es la clave primaria.
type User struct {
	Login         string
	Password      string // texto plano; la comparación la hace la base de datos
	PhoneNum      string
	Role          string // valor tal como está guardado; usar ParseRole para decidir
	FavoriteItems string
}
