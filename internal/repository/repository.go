package repository

import (
	"context"
	"time"

	"prokat-rental/internal/domain"
)

type EquipmentRepository interface {
	List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
}

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	// Create rents every listed equipment id in one transaction and stores the
	// order with its item price snapshots. It fails with
	// domain.ErrEquipmentUnavailable if any id is unknown or not available.
	Create(ctx context.Context, order *domain.Order, equipmentIDs []int64) ([]domain.OrderItem, error)
	// ActivateStarted moves pending orders starting on or before day to active
	ActivateStarted(ctx context.Context, day time.Time) ([]int64, error)
	// CompleteFinished moves active orders that ended before day to completed
	// and returns their equipment to the catalog
	CompleteFinished(ctx context.Context, day time.Time) ([]int64, error)
}

type ClientRepository interface {
	// Get returns the saved profile, or an empty one if none was saved
	Get(ctx context.Context) (*domain.Client, error)
	Save(ctx context.Context, client *domain.Client) error
}
