package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido. Cualquier actor autorizado puede fijar cualquier estado.
type OrderStatus string

const (
	StatusOrderReceived  OrderStatus = "Order Received"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// OrderStatuses en el orden en que se ofrecen en el menú.
var OrderStatuses = []OrderStatus{
	StatusOrderReceived,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// Valid indica si s es uno de los estados conocidos.
func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// StatusByChoice traduce la opción 1..4 del menú al estado.
func StatusByChoice(choice int) (OrderStatus, bool) {
	if choice < 1 || choice > len(OrderStatuses) {
		return "", false
	}
	return OrderStatuses[choice-1], true
}

// Order cabecera de pedido (FoodOrder). TotalPrice = Σ precio×cantidad al momento de crearse.
type Order struct {
	OrderID        int64
	Login          string
	StoreID        int
	TotalPrice     decimal.Decimal
	OrderTimestamp time.Time
	OrderStatus    OrderStatus
}

// OrderLine línea de pedido (ItemsInOrder); clave (OrderID, ItemName).
type OrderLine struct {
	OrderID  int64
	ItemName string
	Quantity int
}
