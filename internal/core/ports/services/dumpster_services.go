package services

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
)

// DumpsterSvcFacade exposes dumpster CRUD and the direct status patch.
type DumpsterSvcFacade interface {
	CreateDumpster(ctx context.Context, req dto.CreateDumpsterRequest) (*domain.Dumpster, error)
	ListDumpsters(ctx context.Context) ([]domain.Dumpster, error)
	GetDumpsterByID(ctx context.Context, dumpsterID string) (*domain.Dumpster, error)
	UpdateDumpster(ctx context.Context, dumpsterID string, req dto.CreateDumpsterRequest) (*domain.Dumpster, error)
	// UpdateDumpsterStatus sets the status directly, independent of order
	// logic.
	UpdateDumpsterStatus(ctx context.Context, dumpsterID string, status domain.DumpsterStatus, location *string) error
	DeleteDumpster(ctx context.Context, dumpsterID string) error
}
