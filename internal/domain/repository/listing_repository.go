package repository

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
)

// MenuSort orden del listado de menú.
type MenuSort int

const (
	MenuSortByType MenuSort = iota // tipo y luego precio
	MenuSortPriceAsc
	MenuSortPriceDesc
)

// MenuFilter criterios del listado de menú. Campos vacíos/nil no filtran.
type MenuFilter struct {
	Type     string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     MenuSort
}

// OrderListing criterios del listado de pedidos. Login vacío = todos; Limit 0 = sin límite.
type OrderListing struct {
	Login string
	Limit int
}

// ListingRepository listados que se imprimen tal cual salen de la base de datos
// (cabecera con nombres de columna + una línea por fila). Devuelven la cantidad de filas.
type ListingRepository interface {
	PrintMenu(ctx context.Context, w io.Writer, f MenuFilter) (int, error)
	PrintStores(ctx context.Context, w io.Writer, detailed bool) (int, error)
	PrintOrders(ctx context.Context, w io.Writer, l OrderListing) (int, error)
}
