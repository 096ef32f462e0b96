package events

import (
	"context"
	"time"

	"prokat-rental/internal/domain"

	"github.com/google/uuid"
)

type EventType string

const (
	OrderCreated       EventType = "order.created"
	OrderStatusChanged EventType = "order.status_changed"
)

// OrderEvent is the message published for every order lifecycle change
type OrderEvent struct {
	ID             string             `json:"id"`
	Type           EventType          `json:"type"`
	OrderID        int64              `json:"orderId"`
	Status         domain.OrderStatus `json:"status"`
	ContractNumber string             `json:"contractNumber,omitempty"`
	Total          int64              `json:"total,omitempty"`
	OccurredAt     time.Time          `json:"occurredAt"`
}

func NewOrderCreated(order *domain.Order) OrderEvent {
	return OrderEvent{
		ID:             uuid.NewString(),
		Type:           OrderCreated,
		OrderID:        order.ID,
		Status:         order.Status,
		ContractNumber: order.ContractNumber,
		Total:          order.Total,
		OccurredAt:     time.Now().UTC(),
	}
}

func NewOrderStatusChanged(orderID int64, status domain.OrderStatus) OrderEvent {
	return OrderEvent{
		ID:         uuid.NewString(),
		Type:       OrderStatusChanged,
		OrderID:    orderID,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event OrderEvent) error
	Close() error
}

// NopPublisher drops events; used when Kafka is disabled
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event OrderEvent) error { return nil }
func (NopPublisher) Close() error                                     { return nil }
