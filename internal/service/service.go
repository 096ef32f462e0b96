package service

import (
	"context"
	"time"

	"prokat-rental/internal/domain"
)

type CatalogService interface {
	ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
}

type OrderService interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	// ActivateStartedOrders and CompleteFinishedOrders drive the lifecycle;
	// the scheduler calls them with the current time.
	ActivateStartedOrders(ctx context.Context, now time.Time) (int, error)
	CompleteFinishedOrders(ctx context.Context, now time.Time) (int, error)
}

type ClientService interface {
	GetClient(ctx context.Context) (*domain.Client, error)
	SaveClient(ctx context.Context, client *domain.Client) error
}
