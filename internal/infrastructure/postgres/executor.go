package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Executor es la capa de acceso a datos del cliente: cinco primitivas sobre una conexión (o una tx).
// Todas reciben parámetros posicionales ($1, $2...); ninguna concatena entrada del usuario en el SQL.
type Executor struct {
	q Querier
}

// NewExecutor construye el executor sobre pool o tx.
func NewExecutor(q Querier) *Executor {
	return &Executor{q: q}
}

// ExecuteUpdate ejecuta INSERT/UPDATE/DELETE y devuelve las filas afectadas.
func (e *Executor) ExecuteUpdate(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := e.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ExecuteQueryAndPrintResult imprime en w una cabecera con los nombres de columna y una línea por fila,
// separadas por tabulador. La cabecera solo aparece si hay filas. Devuelve la cantidad de filas.
func (e *Executor) ExecuteQueryAndPrintResult(ctx context.Context, w io.Writer, sql string, args ...any) (int, error) {
	rs, err := e.query(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	if len(rs.rows) == 0 {
		return 0, nil
	}
	if _, err := fmt.Fprintln(w, strings.Join(rs.columns, "\t")); err != nil {
		return 0, err
	}
	for _, rec := range rs.rows {
		if _, err := fmt.Fprintln(w, strings.Join(rec, "\t")); err != nil {
			return 0, err
		}
	}
	return len(rs.rows), nil
}

// ExecuteQueryAndReturnResult devuelve las filas como texto, en el orden de la base de datos y sin cabecera.
func (e *Executor) ExecuteQueryAndReturnResult(ctx context.Context, sql string, args ...any) ([][]string, error) {
	rs, err := e.query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rs.rows, nil
}

// ExecuteQuery devuelve solo la cantidad de filas del resultado.
func (e *Executor) ExecuteQuery(ctx context.Context, sql string, args ...any) (int, error) {
	rows, err := e.q.Query(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	n := 0
	for rows.Next() {
		n++
	}
	return n, rows.Err()
}

// NoSequenceValue centinela de CurrentSequenceValue cuando la secuencia no tiene valor en esta sesión.
const NoSequenceValue int64 = -1

// CurrentSequenceValue devuelve currval(name). currval es local a la sesión, así que debe llamarse
// sobre la misma conexión (o tx) que ejecutó el nextval.
func (e *Executor) CurrentSequenceValue(ctx context.Context, name string) (int64, error) {
	var v int64
	err := e.q.QueryRow(ctx, `SELECT currval($1::text::regclass)`, name).Scan(&v)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "55000" { // object_not_in_prerequisite_state
			return NoSequenceValue, nil
		}
		return NoSequenceValue, err
	}
	return v, nil
}

type resultSet struct {
	columns []string
	rows    [][]string
}

func (e *Executor) query(ctx context.Context, sql string, args ...any) (*resultSet, error) {
	rows, err := e.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	rs := &resultSet{columns: make([]string, len(fds))}
	for i, fd := range fds {
		rs.columns[i] = fd.Name
	}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		rec := make([]string, len(vals))
		for i, v := range vals {
			rec[i] = renderValue(v)
		}
		rs.rows = append(rs.rows, rec)
	}
	return rs, rows.Err()
}

// renderValue representa un valor de columna como texto.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	case bool:
		return strconv.FormatBool(t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	case driver.Valuer:
		dv, err := t.Value()
		if err != nil {
			return fmt.Sprint(v)
		}
		return renderValue(dv)
	default:
		return fmt.Sprint(v)
	}
}
