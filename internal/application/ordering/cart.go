package ordering

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
)

// CartLine un item del carrito con la cantidad acumulada.
type CartLine struct {
	ItemName string // nombre tal como está en Items
	Quantity int
	Subtotal decimal.Decimal // Σ precio cotizado × cantidad agregada
}

// Cart carrito en memoria de un pedido en curso. Agregar el mismo item (sin importar
// mayúsculas) suma la cantidad a la línea existente; el orden de las líneas es el de alta.
type Cart struct {
	lines []CartLine
	index map[string]int
	fold  cases.Caser
}

// NewCart crea un carrito vacío.
func NewCart() *Cart {
	return &Cart{index: make(map[string]int), fold: cases.Fold()}
}

// Add agrega qty unidades del item al precio actual del item.
func (c *Cart) Add(item *entity.Item, qty int) error {
	if item == nil || qty <= 0 {
		return domain.ErrInvalidInput
	}
	name := strings.TrimSpace(item.ItemName)
	sub := item.Price.Mul(decimal.NewFromInt(int64(qty)))
	key := c.fold.String(name)
	if i, ok := c.index[key]; ok {
		c.lines[i].Quantity += qty
		c.lines[i].Subtotal = c.lines[i].Subtotal.Add(sub)
		return nil
	}
	c.index[key] = len(c.lines)
	c.lines = append(c.lines, CartLine{ItemName: name, Quantity: qty, Subtotal: sub})
	return nil
}

// Lines copia de las líneas en orden de alta.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty indica si no se agregó ningún item.
func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Total Σ subtotales.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal)
	}
	return total
}
