package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradsaav/PizzaStore/internal/application/ports"
)

func TestNewPublishing(t *testing.T) {
	total := decimal.RequireFromString("19.98")
	ev := ports.OrderEvent{
		Type:       ports.EventOrderPlaced,
		OrderID:    7,
		Login:      "alice",
		StoreID:    1,
		Status:     "Order Received",
		Total:      &total,
		Lines:      []ports.OrderEventLine{{ItemName: "Cheese Pizza", Quantity: 2}},
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	msg, err := newPublishing(ev, "PizzaStore")
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, ports.EventOrderPlaced, msg.Type)
	assert.Equal(t, "PizzaStore", msg.AppId)
	assert.NotEmpty(t, msg.MessageId)
	assert.Equal(t, int64(7), msg.Headers["order_id"])

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "order.placed", decoded["type"])
	assert.Equal(t, "19.98", decoded["total"])
	assert.Equal(t, "alice", decoded["login"])
}

func TestNewPublishing_UniqueMessageIDs(t *testing.T) {
	ev := ports.OrderEvent{Type: ports.EventOrderStatusChanged, OrderID: 1}
	a, err := newPublishing(ev, "")
	require.NoError(t, err)
	b, err := newPublishing(ev, "")
	require.NoError(t, err)
	assert.NotEqual(t, a.MessageId, b.MessageId)
}

// stubConfirm confirm controlado por el test; un canal sin cerrar nunca confirma.
type stubConfirm struct {
	done chan struct{}
	ack  bool
}

func (c *stubConfirm) WaitContext(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-c.done:
		return c.ack, nil
	}
}

func settled(ack bool) *stubConfirm {
	c := &stubConfirm{done: make(chan struct{}), ack: ack}
	close(c.done)
	return c
}

func TestPublish_ConfirmPorMensaje(t *testing.T) {
	late := &stubConfirm{done: make(chan struct{}), ack: true}
	queue := []*stubConfirm{late, settled(false), settled(true)}
	var keys []string
	p := &Publisher{exchange: "pizzastore.orders"}
	p.publish = func(_ context.Context, key string, _ amqp.Publishing) (confirmation, error) {
		keys = append(keys, key)
		c := queue[0]
		queue = queue[1:]
		return c, nil
	}
	ev := ports.OrderEvent{Type: ports.EventOrderPlaced, OrderID: 1}

	// Caso 1: el broker no confirma a tiempo
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Publish(ctx, ev)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// el ack tardío del primer mensaje llega ahora
	close(late.done)

	// Caso 2: el segundo mensaje recibe su propio nack, no el ack anterior
	err = p.Publish(context.Background(), ev)
	assert.ErrorContains(t, err, "nack")

	// Caso 3: ack
	require.NoError(t, p.Publish(context.Background(), ev))
	assert.Equal(t, []string{"order.placed", "order.placed", "order.placed"}, keys)
}
