// Package rabbitmq publica los eventos de pedido en un exchange fanout con publisher confirms.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bradsaav/PizzaStore/internal/application/ports"
)

// confirmTimeout espera máxima del ack del broker cuando ctx no trae deadline.
const confirmTimeout = 5 * time.Second

var _ ports.OrderEventPublisher = (*Publisher)(nil)

// confirmation confirm de un único mensaje; lo cumple *amqp.DeferredConfirmation.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// publishFunc publica en el exchange y devuelve el confirm atado a ese delivery tag.
type publishFunc func(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error)

// Publisher implementa ports.OrderEventPublisher sobre AMQP 0.9.1.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	appID    string

	publish publishFunc
	mu      sync.Mutex
}

// Dial conecta, declara el exchange (fanout, durable) y activa confirms.
func Dial(url, exchange, appID string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp exchange %s: %w", exchange, err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp confirm mode: %w", err)
	}
	p := &Publisher{conn: conn, ch: ch, exchange: exchange, appID: appID}
	p.publish = func(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error) {
		dc, err := ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
		if err != nil {
			return nil, err
		}
		if dc == nil {
			return nil, errors.New("channel is not in confirm mode")
		}
		return dc, nil
	}
	return p, nil
}

// Publish serializa el evento como JSON, lo publica y espera el ack del broker para ese mensaje.
// Un confirm que llega tarde queda en su propio DeferredConfirmation y no afecta al siguiente Publish.
func (p *Publisher) Publish(ctx context.Context, ev ports.OrderEvent) error {
	msg, err := newPublishing(ev, p.appID)
	if err != nil {
		return err
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, confirmTimeout)
		defer cancel()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil && p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	conf, err := p.publish(ctx, ev.Type, msg)
	if err != nil {
		return fmt.Errorf("amqp publish %s: %w", ev.Type, err)
	}
	ack, err := conf.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("amqp publish %s: esperando confirm: %w", ev.Type, err)
	}
	if !ack {
		return fmt.Errorf("amqp publish %s: nack del broker", ev.Type)
	}
	return nil
}

// Close cierra canal y conexión.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func newPublishing(ev ports.OrderEvent, appID string) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.New().String(),
		Type:         ev.Type,
		AppId:        appID,
		Timestamp:    ev.OccurredAt,
		Body:         body,
		Headers:      amqp.Table{"order_id": ev.OrderID},
	}, nil
}
