package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

func TestMenuQuery(t *testing.T) {
	lo, hi := decimal.NewFromInt(5), decimal.NewFromInt(10)

	// Caso 1: sin filtro, orden por tipo y precio
	q, args := menuQuery(repository.MenuFilter{})
	assert.Equal(t, "SELECT itemName, typeOfItem, price FROM Items ORDER BY typeOfItem, price, itemName", q)
	assert.Empty(t, args)

	// Caso 2: tipo como parámetro, nunca concatenado
	q, args = menuQuery(repository.MenuFilter{Type: " drinks' OR 1=1 -- "})
	assert.Equal(t, "SELECT itemName, typeOfItem, price FROM Items WHERE TRIM(typeOfItem) = $1 ORDER BY typeOfItem, price, itemName", q)
	assert.Equal(t, []any{"drinks' OR 1=1 --"}, args)

	// Caso 3: rango de precio con orden descendente
	q, args = menuQuery(repository.MenuFilter{MinPrice: &lo, MaxPrice: &hi, Sort: repository.MenuSortPriceDesc})
	assert.Equal(t, "SELECT itemName, typeOfItem, price FROM Items WHERE price >= $1 AND price <= $2 ORDER BY price DESC, itemName", q)
	assert.Equal(t, []any{lo, hi}, args)
}

func TestOrdersQuery(t *testing.T) {
	// Caso 1: todos los pedidos
	q, args := ordersQuery(repository.OrderListing{})
	assert.Equal(t, "SELECT orderID, login, storeID, totalPrice, orderStatus FROM FoodOrder ORDER BY orderID DESC", q)
	assert.Empty(t, args)

	// Caso 2: últimos 5 propios
	q, args = ordersQuery(repository.OrderListing{Login: "alice", Limit: 5})
	assert.Equal(t, "SELECT orderID, storeID, totalPrice, orderStatus FROM FoodOrder WHERE login = $1 ORDER BY orderID DESC LIMIT $2", q)
	assert.Equal(t, []any{"alice", 5}, args)

	// Caso 3: últimos 5 de todos
	q, args = ordersQuery(repository.OrderListing{Limit: 5})
	assert.Equal(t, "SELECT orderID, login, storeID, totalPrice, orderStatus FROM FoodOrder ORDER BY orderID DESC LIMIT $1", q)
	assert.Equal(t, []any{5}, args)
}
