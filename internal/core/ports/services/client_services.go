package services

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
)

// ClientSvcFacade exposes client CRUD.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	// UpdateClient replaces the full mutable field set.
	UpdateClient(ctx context.Context, clientID string, req dto.CreateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
}
