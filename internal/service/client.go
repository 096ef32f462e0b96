package service

import (
	"context"
	"strings"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) GetClient(ctx context.Context) (*domain.Client, error) {
	return s.clientRepo.Get(ctx)
}

func (s *clientService) SaveClient(ctx context.Context, client *domain.Client) error {
	logger.EnterMethod("clientService.SaveClient", "company", client.CompanyName)

	if client.Email != "" && !strings.Contains(client.Email, "@") {
		err := domain.NewValidationError("email", "invalid email address")
		logger.ExitMethodWithError("clientService.SaveClient", err)
		return err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		logger.ExitMethodWithError("clientService.SaveClient", err)
		return err
	}

	logger.ExitMethod("clientService.SaveClient")
	return nil
}
