package service

import (
	"context"
	"fmt"
	"time"

	"prokat-rental/internal/contract"
	"prokat-rental/internal/domain"
	"prokat-rental/internal/events"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/notify"
	"prokat-rental/internal/repository"
	"prokat-rental/internal/utils"
)

type orderService struct {
	orderRepo  repository.OrderRepository
	clientRepo repository.ClientRepository
	publisher  events.Publisher
	mailer     notify.ContractMailer
	lessor     string
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	publisher events.Publisher,
	mailer notify.ContractMailer,
	lessor string,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		publisher:  publisher,
		mailer:     mailer,
		lessor:     lessor,
	}
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	logger.EnterMethod("orderService.CreateOrder", "items", len(req.EquipmentIDs), "start", req.StartDate, "end", req.EndDate)

	if err := validateCreateOrder(req); err != nil {
		logger.ExitMethodWithError("orderService.CreateOrder", err)
		return nil, err
	}

	order := &domain.Order{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	items, err := s.orderRepo.Create(ctx, order, req.EquipmentIDs)
	if err != nil {
		logger.ExitMethodWithError("orderService.CreateOrder", err)
		return nil, err
	}

	// The order is committed; nothing below may fail it.
	if err := s.publisher.Publish(ctx, events.NewOrderCreated(order)); err != nil {
		logger.Error("Failed to publish order event", "order_id", order.ID, "error", err)
	}
	s.mailContract(ctx, order, items)

	logger.ExitMethod("orderService.CreateOrder", "order_id", order.ID, "contract_number", order.ContractNumber, "total", order.Total)
	return order, nil
}

func validateCreateOrder(req domain.CreateOrderRequest) error {
	if len(req.EquipmentIDs) == 0 {
		return domain.NewValidationError("equipmentIds", "at least one equipment id is required")
	}
	for _, id := range req.EquipmentIDs {
		if id <= 0 {
			return domain.NewValidationError("equipmentIds", fmt.Sprintf("invalid equipment id %d", id))
		}
	}
	if _, _, err := utils.ParseDateRange(req.StartDate, req.EndDate); err != nil {
		return domain.NewValidationError("dates", err.Error())
	}
	return nil
}

func (s *orderService) mailContract(ctx context.Context, order *domain.Order, items []domain.OrderItem) {
	client, err := s.clientRepo.Get(ctx)
	if err != nil {
		logger.Warn("Failed to load client profile for contract mail", "order_id", order.ID, "error", err)
		return
	}
	if client.Email == "" {
		logger.Info("Client has no email, contract not mailed", "order_id", order.ID)
		return
	}

	body := contract.Render(*order, *client, contract.LinesFromOrderItems(items), s.lessor)
	if err := s.mailer.SendContract(ctx, client.Email, client.ContactPerson, order.ContractNumber, body); err != nil {
		logger.Error("Failed to mail contract", "order_id", order.ID, "contract_number", order.ContractNumber, "error", err)
	}
}

func (s *orderService) ActivateStartedOrders(ctx context.Context, now time.Time) (int, error) {
	ids, err := s.orderRepo.ActivateStarted(ctx, utils.CalendarDate(now))
	if err != nil {
		return 0, fmt.Errorf("failed to activate orders: %w", err)
	}
	s.publishStatusChanges(ctx, ids, domain.OrderStatusActive)
	return len(ids), nil
}

func (s *orderService) CompleteFinishedOrders(ctx context.Context, now time.Time) (int, error) {
	ids, err := s.orderRepo.CompleteFinished(ctx, utils.CalendarDate(now))
	if err != nil {
		return 0, fmt.Errorf("failed to complete orders: %w", err)
	}
	s.publishStatusChanges(ctx, ids, domain.OrderStatusCompleted)
	return len(ids), nil
}

func (s *orderService) publishStatusChanges(ctx context.Context, ids []int64, status domain.OrderStatus) {
	for _, id := range ids {
		if err := s.publisher.Publish(ctx, events.NewOrderStatusChanged(id, status)); err != nil {
			logger.Error("Failed to publish order event", "order_id", id, "status", status, "error", err)
		}
	}
}
