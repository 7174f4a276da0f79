package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInputClosed stdin se cerró; termina la sesión interactiva.
var ErrInputClosed = errors.New("input closed")

const invalidInput = "Your input is invalid!"

// Prompter lee respuestas línea a línea. Las lecturas numéricas repiten la pregunta
// hasta recibir un valor válido.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter construye el prompter.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line imprime label y devuelve la línea sin el salto final.
func (p *Prompter) Line(label string) (string, error) {
	if label != "" {
		fmt.Fprint(p.w, label)
	}
	s, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Text como Line pero sin espacios alrededor.
func (p *Prompter) Text(label string) (string, error) {
	s, err := p.Line(label)
	return strings.TrimSpace(s), err
}

// Int lee un entero.
func (p *Prompter) Int(label string) (int, error) {
	for {
		s, err := p.Text(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.w, invalidInput)
	}
}

// Int64 lee un entero de 64 bits (ids de pedido).
func (p *Prompter) Int64(label string) (int64, error) {
	for {
		s, err := p.Text(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.w, invalidInput)
	}
}

// Decimal lee un importe.
func (p *Prompter) Decimal(label string) (decimal.Decimal, error) {
	for {
		s, err := p.Text(label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(s)
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(p.w, invalidInput)
	}
}

// Choice lee la opción de un menú.
func (p *Prompter) Choice() (int, error) {
	return p.Int("Please make your choice: ")
}
