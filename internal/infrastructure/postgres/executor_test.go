package postgres

import (
	"bytes"
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type valuer struct{ v driver.Value }

func (x valuer) Value() (driver.Value, error) { return x.v, nil }

func TestRenderValue(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nulo", nil, "null"},
		{"texto", "Cheese Pizza", "Cheese Pizza"},
		{"bytes", []byte("abc"), "abc"},
		{"entero", int64(42), "42"},
		{"int32", int32(7), "7"},
		{"booleano", true, "true"},
		{"float", 9.5, "9.5"},
		{"decimal", decimal.RequireFromString("19.98"), "19.98"},
		{"fecha", time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC), "2024-03-05 14:07:09"},
		{"valuer", valuer{v: int64(3)}, "3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, renderValue(c.in))
		})
	}
}

func TestExecutor_ExecuteQueryAndPrintResult(t *testing.T) {
	ctx := context.Background()

	// Caso 1: cabecera con los nombres de columna y una línea por fila
	rows := &stubRows{
		cols: []string{"itemname", "typeofitem", "price"},
		data: [][]any{
			{"Cheese Pizza", "entree", decimal.RequireFromString("9.99")},
			{"Coke", "drinks", nil},
		},
	}
	q := &stubQuerier{rows: []*stubRows{rows}}
	var buf bytes.Buffer
	n, err := NewExecutor(q).ExecuteQueryAndPrintResult(ctx, &buf,
		"SELECT itemName, typeOfItem, price FROM Items WHERE price >= $1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "itemname\ttypeofitem\tprice\nCheese Pizza\tentree\t9.99\nCoke\tdrinks\tnull\n", buf.String())
	assert.Equal(t, []any{1}, q.calls[0].args)
	assert.True(t, rows.closed)

	// Caso 2: sin filas no se imprime ni la cabecera
	q = &stubQuerier{rows: []*stubRows{{cols: []string{"orderid"}}}}
	buf.Reset()
	n, err = NewExecutor(q).ExecuteQueryAndPrintResult(ctx, &buf, "SELECT orderID FROM FoodOrder")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())

	// Caso 3: error de la consulta
	q = &stubQuerier{queryErr: errors.New("relation does not exist")}
	_, err = NewExecutor(q).ExecuteQueryAndPrintResult(ctx, &buf, "SELECT 1")
	assert.EqualError(t, err, "relation does not exist")
	assert.Empty(t, buf.String())
}

func TestExecutor_ResultadosYConteo(t *testing.T) {
	ctx := context.Background()
	q := &stubQuerier{rows: []*stubRows{
		{cols: []string{"login", "role"}, data: [][]any{{"alice", "Customer"}, {"dan", "Driver"}}},
		{cols: []string{"?column?"}, data: [][]any{{int32(1)}, {int32(1)}, {int32(1)}}},
	}}
	exec := NewExecutor(q)

	res, err := exec.ExecuteQueryAndReturnResult(ctx, "SELECT login, role FROM Users")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"alice", "Customer"}, {"dan", "Driver"}}, res)

	n, err := exec.ExecuteQuery(ctx, "SELECT 1 FROM Users")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestExecutor_ExecuteUpdate(t *testing.T) {
	q := &stubQuerier{execTag: pgconn.NewCommandTag("UPDATE 2")}
	n, err := NewExecutor(q).ExecuteUpdate(context.Background(), "UPDATE Items SET price = $1", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestExecutor_CurrentSequenceValue(t *testing.T) {
	ctx := context.Background()

	// Caso 1: currval con valor
	q := &stubQuerier{row: &stubRow{vals: []any{int64(42)}}}
	v, err := NewExecutor(q).CurrentSequenceValue(ctx, "foodorder_orderid_seq")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
	assert.Equal(t, []any{"foodorder_orderid_seq"}, q.calls[0].args)

	// Caso 2: la secuencia aún no se usó en esta sesión
	q = &stubQuerier{row: &stubRow{err: &pgconn.PgError{Code: "55000"}}}
	v, err = NewExecutor(q).CurrentSequenceValue(ctx, "foodorder_orderid_seq")
	require.NoError(t, err)
	assert.Equal(t, NoSequenceValue, v)

	// Caso 3: cualquier otro error se propaga
	q = &stubQuerier{row: &stubRow{err: errors.New("conn closed")}}
	v, err = NewExecutor(q).CurrentSequenceValue(ctx, "foodorder_orderid_seq")
	assert.Error(t, err)
	assert.Equal(t, NoSequenceValue, v)
}
