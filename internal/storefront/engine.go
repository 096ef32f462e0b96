package storefront

import (
	"context"
	"strings"
	"time"

	"prokat-rental/internal/contract"
	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/utils"
)

// DefaultRentalDays is the rental window used when no end date is given
const DefaultRentalDays = 7

// CommitOptions overrides the rental window. A zero Start means today, a zero
// End means Start plus the engine's rental days.
type CommitOptions struct {
	Start time.Time
	End   time.Time
}

// Receipt is the outcome of a successful commit
type Receipt struct {
	Order      domain.Order
	Items      []domain.Equipment // cart snapshot the order was created from
	LocalTotal int64              // cart total computed before confirmation
	Contract   string
}

// PriceChanged reports whether the service billed a different total than the
// cart showed, i.e. a price change raced with checkout.
func (r *Receipt) PriceChanged() bool {
	return r.Order.Total != r.LocalTotal
}

// OrderEngine turns the session cart into an order on the rental service
type OrderEngine struct {
	remote     Remote
	cart       *Cart
	history    *HistoryView
	profile    *ProfileStore
	lessor     string
	rentalDays int
	now        func() time.Time
}

// EngineOption customizes an OrderEngine
type EngineOption func(*OrderEngine)

// WithLessor sets the lessor name printed on contracts
func WithLessor(name string) EngineOption {
	return func(e *OrderEngine) { e.lessor = name }
}

// WithRentalDays sets the default rental window length
func WithRentalDays(days int) EngineOption {
	return func(e *OrderEngine) {
		if days > 0 {
			e.rentalDays = days
		}
	}
}

// WithClock replaces time.Now, used to resolve the default start date
func WithClock(now func() time.Time) EngineOption {
	return func(e *OrderEngine) { e.now = now }
}

func NewOrderEngine(remote Remote, cart *Cart, history *HistoryView, profile *ProfileStore, opts ...EngineOption) *OrderEngine {
	e := &OrderEngine{
		remote:     remote,
		cart:       cart,
		history:    history,
		profile:    profile,
		lessor:     contract.DefaultLessor,
		rentalDays: DefaultRentalDays,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Commit submits the cart as a new order. The cart is snapshotted before the
// request, so later cart edits do not change what is sent. On failure the cart
// is left as it was and the error is returned; on success the cart is cleared,
// the order history is refreshed and the contract text is rendered.
func (e *OrderEngine) Commit(ctx context.Context, opts CommitOptions) (*Receipt, error) {
	methodName := "OrderEngine.Commit"
	logger.EnterMethod(methodName)

	items := e.cart.Items()
	if len(items) == 0 {
		err := &EmptyCartError{}
		logger.ExitMethodWithError(methodName, err)
		return nil, err
	}

	req, localTotal := e.buildRequest(items, opts)
	logger.Info("Submitting order", "items", len(req.EquipmentIDs), "start_date", req.StartDate, "end_date", req.EndDate, "local_total", localTotal)

	created, err := e.remote.CreateOrder(ctx, req)
	if err != nil {
		logger.Error("Order commit failed, cart kept", "error", err, "items", len(items))
		logger.ExitMethodWithError(methodName, err)
		return nil, err
	}

	order := confirmedOrder(created, req, items, localTotal)
	if order.Total != localTotal {
		logger.Warn("Service total differs from cart total", "contract_number", order.ContractNumber, "service_total", order.Total, "cart_total", localTotal)
	}

	e.cart.Clear()
	if e.history != nil {
		// failure is logged by the view; the order itself is committed
		_ = e.history.Refresh(ctx)
	}

	var client domain.Client
	if e.profile != nil {
		client = e.profile.Current()
	}

	receipt := &Receipt{
		Order:      order,
		Items:      items,
		LocalTotal: localTotal,
		Contract:   contract.Render(order, client, contract.LinesFromEquipment(items), e.lessor),
	}
	logger.ExitMethod(methodName, "contract_number", order.ContractNumber, "total", order.Total)
	return receipt, nil
}

func (e *OrderEngine) buildRequest(items []domain.Equipment, opts CommitOptions) (domain.CreateOrderRequest, int64) {
	start := opts.Start
	if start.IsZero() {
		start = e.now()
	}
	start = utils.CalendarDate(start)

	end := opts.End
	if end.IsZero() {
		end = utils.AddDays(start, e.rentalDays)
	}

	ids := make([]int64, len(items))
	var total int64
	for i, item := range items {
		ids[i] = item.ID
		total += item.Price
	}

	return domain.CreateOrderRequest{
		EquipmentIDs: ids,
		StartDate:    utils.FormatDate(start),
		EndDate:      utils.FormatDate(utils.CalendarDate(end)),
	}, total
}

// confirmedOrder keeps every field the service sent and fills the ones it
// omitted from the request that was submitted.
func confirmedOrder(created *CreatedOrder, req domain.CreateOrderRequest, items []domain.Equipment, localTotal int64) domain.Order {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	order := domain.Order{
		Equipment:      strings.Join(names, ", "),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         domain.OrderStatusPending,
		Total:          localTotal,
		ContractNumber: created.ContractNumber,
	}
	if created.ID != nil {
		order.ID = *created.ID
	}
	if created.Equipment != nil {
		order.Equipment = *created.Equipment
	}
	if created.StartDate != nil {
		order.StartDate = *created.StartDate
	}
	if created.EndDate != nil {
		order.EndDate = *created.EndDate
	}
	if created.Status != nil {
		order.Status = *created.Status
	}
	if created.Total != nil {
		order.Total = *created.Total
	}
	return order
}
