package storefront

import (
	"context"

	"prokat-rental/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRemote
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockRemote) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockRemote) LoadClient(ctx context.Context) (domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *MockRemote) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockRemote) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*CreatedOrder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CreatedOrder), args.Error(1)
}

func drill() domain.Equipment {
	return domain.Equipment{ID: 1, Name: "Дрель ударная Makita HP1630", Category: domain.CategoryPowerTools, Price: 500, Period: "day", Status: domain.EquipmentStatusAvailable}
}

func mixer() domain.Equipment {
	return domain.Equipment{ID: 2, Name: "Бетономешалка 180л", Category: domain.CategoryConstruction, Price: 1200, Period: "day", Status: domain.EquipmentStatusAvailable}
}

func level() domain.Equipment {
	return domain.Equipment{ID: 3, Name: "Лазерный нивелир Bosch", Category: domain.CategoryMeasuring, Price: 300, Period: "day", Status: domain.EquipmentStatusRented}
}

func generator() domain.Equipment {
	return domain.Equipment{ID: 4, Name: "Генератор бензиновый 5кВт", Category: domain.CategoryPowerSupplies, Price: 900, Period: "day", Status: domain.EquipmentStatusMaintenance}
}

func perforator() domain.Equipment {
	return domain.Equipment{ID: 5, Name: "Перфоратор Bosch GBH 2-26", Category: domain.CategoryPowerTools, Price: 700, Period: "day", Status: domain.EquipmentStatusAvailable}
}

func ptr[T any](v T) *T { return &v }
