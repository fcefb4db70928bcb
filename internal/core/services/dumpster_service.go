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

type dumpsterService struct {
	BaseService
	dumpsterRepo portsrepo.DumpsterRepository
}

// NewDumpsterService creates the dumpster CRUD service.
func NewDumpsterService(dumpsterRepo portsrepo.DumpsterRepository) portssvc.DumpsterSvcFacade {
	return &dumpsterService{dumpsterRepo: dumpsterRepo}
}

var _ portssvc.DumpsterSvcFacade = (*dumpsterService)(nil)

func (s *dumpsterService) CreateDumpster(ctx context.Context, req dto.CreateDumpsterRequest) (*domain.Dumpster, error) {
	dumpster := domain.Dumpster{
		DumpsterID:  uuid.NewString(),
		Identifier:  req.Identifier,
		Size:        req.Size,
		Capacity:    req.Capacity,
		Description: req.Description,
		Status:      domain.DumpsterAvailable,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.dumpsterRepo.SaveDumpster(ctx, dumpster); err != nil {
		return nil, fmt.Errorf("failed to save dumpster: %w", err)
	}

	s.LogInfo(ctx, "Dumpster created", slog.String("dumpster_id", dumpster.DumpsterID), slog.String("identifier", dumpster.Identifier))
	return &dumpster, nil
}

func (s *dumpsterService) ListDumpsters(ctx context.Context) ([]domain.Dumpster, error) {
	dumpsters, err := s.dumpsterRepo.FindDumpsters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dumpsters: %w", err)
	}
	return dumpsters, nil
}

func (s *dumpsterService) GetDumpsterByID(ctx context.Context, dumpsterID string) (*domain.Dumpster, error) {
	dumpster, err := s.dumpsterRepo.FindDumpsterByID(ctx, dumpsterID)
	if err != nil {
		return nil, err
	}
	return dumpster, nil
}

func (s *dumpsterService) UpdateDumpster(ctx context.Context, dumpsterID string, req dto.CreateDumpsterRequest) (*domain.Dumpster, error) {
	dumpster, err := s.dumpsterRepo.FindDumpsterByID(ctx, dumpsterID)
	if err != nil {
		return nil, err
	}

	// Status and location stay untouched here; they belong to the order
	// lifecycle and the status patch.
	dumpster.Identifier = req.Identifier
	dumpster.Size = req.Size
	dumpster.Capacity = req.Capacity
	dumpster.Description = req.Description

	if err := s.dumpsterRepo.UpdateDumpster(ctx, *dumpster); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Dumpster updated", slog.String("dumpster_id", dumpsterID))
	return dumpster, nil
}

func (s *dumpsterService) UpdateDumpsterStatus(ctx context.Context, dumpsterID string, status domain.DumpsterStatus, location *string) error {
	if err := s.dumpsterRepo.SetDumpsterStatus(ctx, dumpsterID, status, location); err != nil {
		return err
	}
	s.LogInfo(ctx, "Dumpster status updated", slog.String("dumpster_id", dumpsterID), slog.String("status", string(status)))
	return nil
}

func (s *dumpsterService) DeleteDumpster(ctx context.Context, dumpsterID string) error {
	if err := s.dumpsterRepo.DeleteDumpster(ctx, dumpsterID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Dumpster deleted", slog.String("dumpster_id", dumpsterID))
	return nil
}
