package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_IntRepregunta(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n\n 42 \n"), &out)

	n, err := p.Int("Qty: ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, 2, strings.Count(out.String(), "Your input is invalid!"))
	assert.Equal(t, 3, strings.Count(out.String(), "Qty: "))
}

func TestPrompter_Decimal(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("diez\n10.50\n"), &out)

	d, err := p.Decimal("Price: ")
	require.NoError(t, err)
	assert.Equal(t, "10.50", d.StringFixed(2))
	assert.Contains(t, out.String(), "Your input is invalid!")
}

func TestPrompter_FinDeEntrada(t *testing.T) {
	var out bytes.Buffer

	// Caso 1: última línea sin salto se devuelve igual
	p := NewPrompter(strings.NewReader("hola\r\nchau"), &out)
	s, err := p.Line("")
	require.NoError(t, err)
	assert.Equal(t, "hola", s)
	s, err = p.Line("")
	require.NoError(t, err)
	assert.Equal(t, "chau", s)

	// Caso 2: sin más datos
	_, err = p.Line("")
	assert.ErrorIs(t, err, ErrInputClosed)

	// Caso 3: EOF en medio de una lectura numérica
	p = NewPrompter(strings.NewReader("x\n"), &out)
	_, err = p.Int64("Order: ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestPrompter_TextRecorta(t *testing.T) {
	p := NewPrompter(strings.NewReader("   Coke  \n"), &bytes.Buffer{})
	s, err := p.Text("")
	require.NoError(t, err)
	assert.Equal(t, "Coke", s)
}
