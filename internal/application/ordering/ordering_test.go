package ordering_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/application/ordering"
	"github.com/bradsaav/PizzaStore/internal/application/ports"
	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/testutil/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.OrderEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev ports.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

type fakeGenerator struct {
	got ports.Receipt
}

func (g *fakeGenerator) GenerateReceipt(_ context.Context, r ports.Receipt) ([]byte, error) {
	g.got = r
	return []byte("%PDF-fake"), nil
}

type fixture struct {
	db     *memstore.Store
	pub    *recordingPublisher
	place  *ordering.PlaceOrderUseCase
	orders *ordering.OrderUseCase
}

func newFixture() *fixture {
	db := memstore.New()
	db.AddUser("alice", "pw", "Customer")
	db.AddUser("bob", "pw", "Customer")
	db.AddUser("dan", "pw", "Driver")
	db.AddUser("mia", "pw", "Manager")
	db.AddItem("Cheese Pizza", "entree", "9.99")
	db.AddItem("Coke", "drinks", "1.50")
	db.AddStore(1, "1 Main St", "Riverside", "CA")

	pub := &recordingPublisher{}
	guard := auth.NewGuard(db.Users())
	return &fixture{
		db:     db,
		pub:    pub,
		place:  ordering.NewPlaceOrderUseCase(guard, db.Items(), db.Listings(), db.Tx(), pub, nil),
		orders: ordering.NewOrderUseCase(guard, db.OrderRepository(), db.Listings(), pub, nil),
	}
}

// cart cotiza cada nombre como lo haría el CLI.
func (f *fixture) cart(t *testing.T, entries ...any) *ordering.Cart {
	t.Helper()
	c := ordering.NewCart()
	for i := 0; i < len(entries); i += 2 {
		it, err := f.place.Quote(context.Background(), entries[i].(string))
		require.NoError(t, err)
		require.NotNil(t, it, entries[i])
		require.NoError(t, c.Add(it, entries[i+1].(int)))
	}
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Place
// ──────────────────────────────────────────────────────────────────────────────

func TestPlace_PedidoSimple(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	order, err := f.place.Place(ctx, "alice", 1, f.cart(t, "cheese pizza", 2))
	require.NoError(t, err)
	assert.Equal(t, "19.98", order.TotalPrice.StringFixed(2))
	assert.Equal(t, entity.StatusOrderReceived, order.OrderStatus)

	stored := f.db.Orders()
	require.Len(t, stored, 1)
	assert.Equal(t, order.OrderID, stored[0].OrderID)
	assert.Equal(t, "alice", stored[0].Login)

	lines := f.db.OrderLines(order.OrderID)
	require.Len(t, lines, 1)
	assert.Equal(t, "Cheese Pizza", lines[0].ItemName) // nombre canónico
	assert.Equal(t, 2, lines[0].Quantity)

	require.Len(t, f.pub.events, 1)
	ev := f.pub.events[0]
	assert.Equal(t, ports.EventOrderPlaced, ev.Type)
	assert.Equal(t, order.OrderID, ev.OrderID)
	assert.Equal(t, "19.98", ev.Total.StringFixed(2))
	assert.Equal(t, []ports.OrderEventLine{{ItemName: "Cheese Pizza", Quantity: 2}}, ev.Lines)
}

func TestPlace_CantidadesAcumuladas(t *testing.T) {
	f := newFixture()
	order, err := f.place.Place(context.Background(), "alice", 1, f.cart(t, "Coke", 1, "COKE", 2))
	require.NoError(t, err)

	lines := f.db.OrderLines(order.OrderID)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "4.50", order.TotalPrice.StringFixed(2))
}

func TestPlace_Quote(t *testing.T) {
	f := newFixture()
	it, err := f.place.Quote(context.Background(), "  Pepperoni ")
	require.NoError(t, err)
	assert.Nil(t, it)

	it, err = f.place.Quote(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, it)
}

func TestPlace_CarritoVacio(t *testing.T) {
	f := newFixture()
	_, err := f.place.Place(context.Background(), "alice", 1, ordering.NewCart())
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.Empty(t, f.db.Orders())
	assert.Empty(t, f.pub.events)
}

// Si un item desaparece después de cotizarlo, no queda ni la cabecera ni las líneas previas.
func TestPlace_RollbackItemEliminado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cart := f.cart(t, "Cheese Pizza", 1, "Coke", 1)
	require.NoError(t, f.db.Items().Delete(ctx, "Coke"))

	_, err := f.place.Place(ctx, "alice", 1, cart)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, f.db.Orders())
	assert.Empty(t, f.pub.events)
}

func TestPlace_SucursalInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.place.Place(context.Background(), "alice", 99, f.cart(t, "Coke", 1))
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.Empty(t, f.db.Orders())
}

// Un broker caído no deshace un pedido confirmado.
func TestPlace_FalloAlPublicar(t *testing.T) {
	f := newFixture()
	f.pub.err = errors.New("broker down")
	order, err := f.place.Place(context.Background(), "alice", 1, f.cart(t, "Coke", 1))
	require.NoError(t, err)
	assert.Len(t, f.db.OrderLines(order.OrderID), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func (f *fixture) seedOrders(t *testing.T) (aliceIDs []int64, bobID int64) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		o, err := f.place.Place(ctx, "alice", 1, f.cart(t, "Coke", 1))
		require.NoError(t, err)
		aliceIDs = append(aliceIDs, o.OrderID)
	}
	o, err := f.place.Place(ctx, "bob", 1, f.cart(t, "Cheese Pizza", 1))
	require.NoError(t, err)
	return aliceIDs, o.OrderID
}

func TestPrintHistory(t *testing.T) {
	f := newFixture()
	f.seedOrders(t)
	ctx := context.Background()

	// Caso 1: customer ve solo los suyos
	var buf bytes.Buffer
	res, err := f.orders.PrintHistory(ctx, "alice", &buf, false)
	require.NoError(t, err)
	assert.False(t, res.AllCustomers)
	assert.Equal(t, 6, res.Count)
	assert.NotContains(t, buf.String(), "bob")

	// Caso 2: últimos 5 propios, del más nuevo al más viejo
	buf.Reset()
	res, err = f.orders.PrintHistory(ctx, "alice", &buf, true)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Count)
	assert.Contains(t, buf.String(), "orderid\tstoreid\ttotalprice\torderstatus\n6\t")

	// Caso 3: driver ve todos
	buf.Reset()
	res, err = f.orders.PrintHistory(ctx, "dan", &buf, false)
	require.NoError(t, err)
	assert.True(t, res.AllCustomers)
	assert.Equal(t, 7, res.Count)
	assert.Contains(t, buf.String(), "7\tbob\t1\t9.99\tOrder Received")
}

func TestDetail(t *testing.T) {
	f := newFixture()
	aliceIDs, bobID := f.seedOrders(t)
	ctx := context.Background()

	// Caso 1: el dueño ve su pedido con líneas
	d, err := f.orders.Detail(ctx, "alice", aliceIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "alice", d.Order.Login)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, "Coke", d.Lines[0].ItemName)

	// Caso 2: customer pidiendo un pedido ajeno
	_, err = f.orders.Detail(ctx, "alice", bobID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.EqualError(t, err, "Permission denied. You can only view your own orders.")

	// Caso 3: driver y manager ven cualquiera
	for _, login := range []string{"dan", "mia"} {
		d, err = f.orders.Detail(ctx, login, bobID)
		require.NoError(t, err, login)
		assert.Equal(t, "bob", d.Order.Login)
	}

	// Caso 4: inexistente
	_, err = f.orders.Detail(ctx, "mia", 999)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture()
	aliceIDs, _ := f.seedOrders(t)
	ctx := context.Background()
	id := aliceIDs[0]
	f.pub.events = nil

	// Caso 1: customer no puede
	var buf bytes.Buffer
	_, err := f.orders.PrintStatusBoard(ctx, "alice", &buf)
	assert.EqualError(t, err, "Permission denied. Only drivers and managers can update order status.")
	assert.ErrorIs(t, f.orders.UpdateStatus(ctx, "alice", id, entity.StatusDelivered), domain.ErrForbidden)

	// Caso 2: driver actualiza
	n, err := f.orders.PrintStatusBoard(ctx, "dan", &buf)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	require.NoError(t, f.orders.UpdateStatus(ctx, "dan", id, entity.StatusOutForDelivery))
	d, err := f.orders.Detail(ctx, "alice", id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOutForDelivery, d.Order.OrderStatus)

	require.Len(t, f.pub.events, 1)
	assert.Equal(t, ports.EventOrderStatusChanged, f.pub.events[0].Type)
	assert.Equal(t, "alice", f.pub.events[0].Login)
	assert.Equal(t, "dan", f.pub.events[0].ChangedBy)

	// Caso 3: se valida el pedido antes de elegir el estado
	o, err := f.orders.StatusTarget(ctx, "mia", id)
	require.NoError(t, err)
	assert.Equal(t, "alice", o.Login)
	_, err = f.orders.StatusTarget(ctx, "mia", 999)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	_, err = f.orders.StatusTarget(ctx, "alice", id)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Caso 4: estado desconocido y pedido inexistente
	assert.ErrorIs(t, f.orders.UpdateStatus(ctx, "mia", id, entity.OrderStatus("Lost")), domain.ErrInvalidStatus)
	assert.ErrorIs(t, f.orders.UpdateStatus(ctx, "mia", 999, entity.StatusDelivered), domain.ErrOrderNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Receipt
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptExport(t *testing.T) {
	f := newFixture()
	aliceIDs, bobID := f.seedOrders(t)
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "receipts")
	gen := &fakeGenerator{}
	uc := ordering.NewReceiptUseCase(f.orders, f.db.Stores(), gen, dir)

	// Caso 1: el dueño exporta
	path, err := uc.Export(ctx, "alice", aliceIDs[0])
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "order-1.pdf"), path)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(b))
	require.NotNil(t, gen.got.Store)
	assert.Equal(t, "1 Main St", gen.got.Store.Address)

	// Caso 2: misma regla de acceso que el detalle
	_, err = uc.Export(ctx, "alice", bobID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = os.Stat(filepath.Join(dir, "order-7.pdf"))
	assert.True(t, os.IsNotExist(err))
}
