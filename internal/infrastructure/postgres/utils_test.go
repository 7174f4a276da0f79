package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSQLStateClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}

	// Caso 1: errores directos
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(fk))
	assert.False(t, isForeignKeyViolation(unique))

	// Caso 2: envueltos con %w
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", unique)))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert order: %w", fk)))

	// Caso 3: nil y errores ajenos
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isForeignKeyViolation(errors.New("connection reset")))
}
