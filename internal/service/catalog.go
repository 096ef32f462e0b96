package service

import (
	"context"
	"strings"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/repository"
)

type catalogService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewCatalogService(equipmentRepo repository.EquipmentRepository) CatalogService {
	return &catalogService{equipmentRepo: equipmentRepo}
}

func (s *catalogService) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	logger.EnterMethod("catalogService.ListEquipment", "category", filter.Category, "search", filter.Search)

	filter.Search = strings.TrimSpace(filter.Search)
	items, err := s.equipmentRepo.List(ctx, filter)
	if err != nil {
		logger.ExitMethodWithError("catalogService.ListEquipment", err)
		return nil, err
	}

	logger.ExitMethod("catalogService.ListEquipment", "count", len(items))
	return items, nil
}
