package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento de pedido.
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent notificación emitida después de confirmar un cambio en un pedido.
type OrderEvent struct {
	Type       string           `json:"type"`
	OrderID    int64            `json:"order_id"`
	Login      string           `json:"login"`
	StoreID    int              `json:"store_id,omitempty"`
	Status     string           `json:"status"`
	Total      *decimal.Decimal `json:"total,omitempty"`
	Lines      []OrderEventLine `json:"lines,omitempty"`
	ChangedBy  string           `json:"changed_by,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// OrderEventLine línea del pedido dentro del evento.
type OrderEventLine struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// OrderEventPublisher puerto de salida para eventos de pedido.
// Un fallo al publicar nunca revierte el pedido: el llamador solo lo registra.
type OrderEventPublisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
}

// NoopPublisher descarta los eventos (AMQP deshabilitado).
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, OrderEvent) error { return nil }
