package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
)

// orderSequence genera FoodOrder.orderID.
const orderSequence = "foodorder_orderid_seq"

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q    Querier
	exec *Executor
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q, exec: NewExecutor(q)}
}

// Create inserta la cabecera tomando el id de la secuencia y lo recupera con currval
// (misma conexión, así que es el valor de este insert).
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO FoodOrder (orderID, login, storeID, totalPrice, orderTimestamp, orderStatus)
		VALUES (nextval('` + orderSequence + `'), $1, $2, $3, $4, $5)`
	_, err := r.exec.ExecuteUpdate(ctx, query,
		order.Login, order.StoreID, order.TotalPrice, order.OrderTimestamp, string(order.OrderStatus),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrStoreNotFound
		}
		return fmt.Errorf("insert order: %w", err)
	}
	id, err := r.exec.CurrentSequenceValue(ctx, orderSequence)
	if err != nil {
		return fmt.Errorf("read order id: %w", err)
	}
	if id == NoSequenceValue {
		return fmt.Errorf("read order id: secuencia %s sin valor", orderSequence)
	}
	order.OrderID = id
	return nil
}

// GetByID obtiene la cabecera de un pedido.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT orderID, TRIM(login), storeID, totalPrice, orderTimestamp, TRIM(orderStatus)
		FROM FoodOrder WHERE orderID = $1`
	var (
		o      entity.Order
		status string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.OrderID, &o.Login, &o.StoreID, &o.TotalPrice, &o.OrderTimestamp, &status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.OrderStatus = entity.OrderStatus(status)
	return &o, nil
}

// AddLine inserta la línea o acumula la cantidad si el item ya está en el pedido.
func (r *OrderRepo) AddLine(ctx context.Context, line entity.OrderLine) error {
	query := `
		INSERT INTO ItemsInOrder (orderID, itemName, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (orderID, itemName)
		DO UPDATE SET quantity = ItemsInOrder.quantity + EXCLUDED.quantity`
	if _, err := r.exec.ExecuteUpdate(ctx, query, line.OrderID, line.ItemName, line.Quantity); err != nil {
		return fmt.Errorf("upsert order line %s: %w", line.ItemName, err)
	}
	return nil
}

// Lines lista las líneas de un pedido.
func (r *OrderRepo) Lines(ctx context.Context, orderID int64) ([]entity.OrderLine, error) {
	rows, err := r.q.Query(ctx,
		`SELECT orderID, itemName, quantity FROM ItemsInOrder WHERE orderID = $1 ORDER BY itemName`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var list []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.OrderID, &l.ItemName, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// UpdateStatus fija el estado del pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	n, err := r.exec.ExecuteUpdate(ctx, `UPDATE FoodOrder SET orderStatus = $2 WHERE orderID = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if n == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
