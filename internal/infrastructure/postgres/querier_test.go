package postgres

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier en memoria: registra el SQL y los argumentos y devuelve respuestas fijas
// ──────────────────────────────────────────────────────────────────────────────

type call struct {
	sql  string
	args []any
}

type stubQuerier struct {
	calls []call

	execTag pgconn.CommandTag
	execErr error

	rows     []*stubRows // una entrada por cada Query, en orden
	queryErr error

	row *stubRow
}

var _ Querier = (*stubQuerier)(nil)

func (q *stubQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.calls = append(q.calls, call{sql, args})
	return q.execTag, q.execErr
}

func (q *stubQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.calls = append(q.calls, call{sql, args})
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	if len(q.rows) == 0 {
		return &stubRows{}, nil
	}
	r := q.rows[0]
	q.rows = q.rows[1:]
	return r, nil
}

func (q *stubQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.calls = append(q.calls, call{sql, args})
	if q.row == nil {
		return &stubRow{err: pgx.ErrNoRows}
	}
	return q.row
}

type stubRow struct {
	vals []any
	err  error
}

func (r *stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.vals)
}

type stubRows struct {
	cols   []string
	data   [][]any
	i      int
	closed bool
}

var _ pgx.Rows = (*stubRows)(nil)

func (r *stubRows) Close()                        { r.closed = true }
func (r *stubRows) Err() error                    { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *stubRows) RawValues() [][]byte           { return nil }
func (r *stubRows) Conn() *pgx.Conn               { return nil }

func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *stubRows) Next() bool {
	if r.i < len(r.data) {
		r.i++
		return true
	}
	return false
}

func (r *stubRows) Scan(dest ...any) error { return assign(dest, r.data[r.i-1]) }

func (r *stubRows) Values() ([]any, error) { return r.data[r.i-1], nil }

func assign(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d destinos para %d columnas", len(dest), len(vals))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(vals[i]))
	}
	return nil
}
