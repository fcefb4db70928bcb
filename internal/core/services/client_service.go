package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
	"github.com/google/uuid"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates the client CRUD service.
func NewClientService(clientRepo portsrepo.ClientRepository) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	client := domain.Client{
		ClientID:     uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Document:     req.Document,
		DocumentType: domain.DocumentType(req.DocumentType),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.FindClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.CreateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// Update replaces the full mutable field set; the creation timestamp and
	// id are immutable.
	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.Document = req.Document
	client.DocumentType = domain.DocumentType(req.DocumentType)

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Client updated", slog.String("client_id", clientID))
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
