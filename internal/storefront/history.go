package storefront

import (
	"context"
	"fmt"
	"sync"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
)

// HistoryView is a read-only projection over the client's orders
type HistoryView struct {
	remote Remote

	mu     sync.RWMutex
	orders []domain.Order
}

func NewHistoryView(remote Remote) *HistoryView {
	return &HistoryView{remote: remote}
}

// Refresh reloads orders from the service. The last refresh to complete
// wins; on failure the previous list is kept.
func (h *HistoryView) Refresh(ctx context.Context) error {
	orders, err := h.remote.ListOrders(ctx)
	if err != nil {
		logger.Warn("Order history refresh failed, keeping cached orders", "error", err)
		return err
	}

	h.mu.Lock()
	h.orders = orders
	h.mu.Unlock()
	return nil
}

// List returns the orders in the service's order
func (h *HistoryView) List() []domain.Order {
	h.mu.RLock()
	defer h.mu.RUnlock()

	orders := make([]domain.Order, len(h.orders))
	copy(orders, h.orders)
	return orders
}

// Reversed returns a new slice with the orders in reverse. The cached list is
// not touched.
func (h *HistoryView) Reversed() []domain.Order {
	orders := h.List()
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders
}

// Grouped buckets orders by status, keeping list order inside each bucket.
// An order with an unknown status fails the whole grouping.
func (h *HistoryView) Grouped() (map[domain.OrderStatus][]domain.Order, error) {
	groups := map[domain.OrderStatus][]domain.Order{
		domain.OrderStatusActive:    {},
		domain.OrderStatusPending:   {},
		domain.OrderStatusCompleted: {},
	}
	for _, order := range h.List() {
		if !order.Status.Valid() {
			return nil, unknownStatus(order)
		}
		groups[order.Status] = append(groups[order.Status], order)
	}
	return groups, nil
}

// Payment is one row of the payment history
type Payment struct {
	Order domain.Order
	Label string
}

// Payments lists orders in reverse list order with their
// payment state label.
func (h *HistoryView) Payments() ([]Payment, error) {
	orders := h.Reversed()
	payments := make([]Payment, 0, len(orders))
	for _, order := range orders {
		label, err := PaymentLabel(order.Status)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", order.ID, err)
		}
		payments = append(payments, Payment{Order: order, Label: label})
	}
	return payments, nil
}

// StatusLabel maps an order status to its display text
func StatusLabel(status domain.OrderStatus) (string, error) {
	switch status {
	case domain.OrderStatusActive:
		return "Активен", nil
	case domain.OrderStatusPending:
		return "Ожидает", nil
	case domain.OrderStatusCompleted:
		return "Завершён", nil
	}
	return "", &MalformedResponseError{What: fmt.Sprintf("unknown order status %q", status)}
}

// PaymentLabel maps an order status to its payment state text
func PaymentLabel(status domain.OrderStatus) (string, error) {
	switch status {
	case domain.OrderStatusCompleted:
		return "Завершено", nil
	case domain.OrderStatusActive, domain.OrderStatusPending:
		return "В процессе", nil
	}
	return "", &MalformedResponseError{What: fmt.Sprintf("unknown order status %q", status)}
}

// EquipmentStatusLabel maps an availability status to its display text
func EquipmentStatusLabel(status domain.EquipmentStatus) (string, error) {
	switch status {
	case domain.EquipmentStatusAvailable:
		return "Доступно", nil
	case domain.EquipmentStatusRented:
		return "Арендовано", nil
	case domain.EquipmentStatusMaintenance:
		return "На обслуживании", nil
	}
	return "", &MalformedResponseError{What: fmt.Sprintf("unknown equipment status %q", status)}
}

func unknownStatus(order domain.Order) error {
	return &MalformedResponseError{What: fmt.Sprintf("order %d has unknown status %q", order.ID, order.Status)}
}
