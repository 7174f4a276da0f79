package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item representa un producto del menú. ItemName es único sin distinguir mayúsculas.
type Item struct {
	ItemName    string
	TypeOfItem  string // drinks, sides, entree...
	Price       decimal.Decimal
	Ingredients string
	Description string
}

// ItemPatch cambios parciales sobre un Item; los campos nil no se tocan.
type ItemPatch struct {
	TypeOfItem  *string
	Price       *decimal.Decimal
	Ingredients *string
	Description *string
}

// Empty indica si el patch no cambia nada.
func (p ItemPatch) Empty() bool {
	return p.TypeOfItem == nil && p.Price == nil && p.Ingredients == nil && p.Description == nil
}

// Apply aplica el patch sobre el item.
func (p ItemPatch) Apply(it *Item) {
	if p.TypeOfItem != nil {
		it.TypeOfItem = strings.TrimSpace(*p.TypeOfItem)
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Ingredients != nil {
		it.Ingredients = strings.TrimSpace(*p.Ingredients)
	}
	if p.Description != nil {
		it.Description = strings.TrimSpace(*p.Description)
	}
}

// ValidPrice el precio no puede ser negativo.
func ValidPrice(p decimal.Decimal) bool {
	return !p.IsNegative()
}
