package ordering

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/application/ports"
	"github.com/bradsaav/PizzaStore/internal/domain"
	"github.com/bradsaav/PizzaStore/internal/domain/access"
	"github.com/bradsaav/PizzaStore/internal/domain/entity"
	"github.com/bradsaav/PizzaStore/internal/domain/repository"
	"github.com/bradsaav/PizzaStore/pkg/logger"
)

// RecentOrdersLimit cantidad de pedidos de "View Past 5 Order IDs".
const RecentOrdersLimit = 5

// HistoryResult describe qué se imprimió en PrintHistory.
type HistoryResult struct {
	AllCustomers bool // true para drivers y managers
	Count        int
}

// OrderDetail cabecera y líneas de un pedido.
type OrderDetail struct {
	Order entity.Order
	Lines []entity.OrderLine
}

// OrderUseCase consulta de pedidos y cambio de estado.
type OrderUseCase struct {
	guard    *auth.Guard
	orders   repository.OrderRepository
	listings repository.ListingRepository
	events   ports.OrderEventPublisher
	log      *logger.Logger
	now      func() time.Time
}

// NewOrderUseCase construye el caso de uso. events nil equivale a no publicar.
func NewOrderUseCase(
	guard *auth.Guard,
	orders repository.OrderRepository,
	listings repository.ListingRepository,
	events ports.OrderEventPublisher,
	log *logger.Logger,
) *OrderUseCase {
	if events == nil {
		events = ports.NoopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{guard: guard, orders: orders, listings: listings, events: events, log: log, now: time.Now}
}

// PrintHistory imprime los pedidos visibles para el usuario, del más nuevo al más viejo:
// todos si es driver o manager, los propios si es customer. recentOnly limita a los últimos 5.
func (uc *OrderUseCase) PrintHistory(ctx context.Context, login string, w io.Writer, recentOnly bool) (HistoryResult, error) {
	role, err := uc.guard.Require(ctx, login, access.ViewOwnOrders)
	if err != nil {
		return HistoryResult{}, err
	}
	listing := repository.OrderListing{Login: login}
	res := HistoryResult{}
	if access.Allowed(access.ViewAllOrders, role) {
		listing.Login = ""
		res.AllCustomers = true
	}
	if recentOnly {
		listing.Limit = RecentOrdersLimit
	}
	n, err := uc.listings.PrintOrders(ctx, w, listing)
	if err != nil {
		return HistoryResult{}, err
	}
	res.Count = n
	return res, nil
}

// Detail devuelve un pedido con sus líneas. Un customer solo ve los suyos.
func (uc *OrderUseCase) Detail(ctx context.Context, login string, id int64) (*OrderDetail, error) {
	role, err := uc.guard.Role(ctx, login)
	if err != nil {
		return nil, err
	}
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if strings.TrimSpace(order.Login) != login {
		if err := access.Authorize(access.ViewAnyOrder, role); err != nil {
			uc.log.Info().Str("login", login).Int64("order_id", id).Msg("acceso denegado a pedido ajeno")
			return nil, err
		}
	}
	lines, err := uc.orders.Lines(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *order, Lines: lines}, nil
}

// PrintStatusBoard imprime todos los pedidos para elegir cuál actualizar (drivers y managers).
func (uc *OrderUseCase) PrintStatusBoard(ctx context.Context, login string, w io.Writer) (int, error) {
	if _, err := uc.guard.Require(ctx, login, access.UpdateOrderStatus); err != nil {
		return 0, err
	}
	return uc.listings.PrintOrders(ctx, w, repository.OrderListing{})
}

// StatusTarget devuelve el pedido cuyo estado se va a cambiar; ErrOrderNotFound si no existe.
func (uc *OrderUseCase) StatusTarget(ctx context.Context, login string, id int64) (*entity.Order, error) {
	if _, err := uc.guard.Require(ctx, login, access.UpdateOrderStatus); err != nil {
		return nil, err
	}
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus fija el estado del pedido y publica order.status_changed.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, login string, id int64, status entity.OrderStatus) error {
	if !status.Valid() {
		if _, err := uc.guard.Require(ctx, login, access.UpdateOrderStatus); err != nil {
			return err
		}
		return domain.ErrInvalidStatus
	}
	order, err := uc.StatusTarget(ctx, login, id)
	if err != nil {
		return err
	}
	if err := uc.orders.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	uc.log.Info().Int64("order_id", id).Str("status", string(status)).Str("by", login).Msg("estado de pedido actualizado")

	ev := ports.OrderEvent{
		Type:       ports.EventOrderStatusChanged,
		OrderID:    id,
		Login:      strings.TrimSpace(order.Login),
		StoreID:    order.StoreID,
		Status:     string(status),
		ChangedBy:  login,
		OccurredAt: uc.now(),
	}
	if err := uc.events.Publish(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Int64("order_id", id).Msg("no se pudo publicar order.status_changed")
	}
	return nil
}
