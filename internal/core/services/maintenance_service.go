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

type maintenanceService struct {
	BaseService
	maintenanceRepo portsrepo.MaintenanceRepository
	dumpsterRepo    portsrepo.DumpsterRepository
}

// NewMaintenanceService creates the dumpster maintenance log service.
func NewMaintenanceService(maintenanceRepo portsrepo.MaintenanceRepository, dumpsterRepo portsrepo.DumpsterRepository) portssvc.MaintenanceSvcFacade {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		dumpsterRepo:    dumpsterRepo,
	}
}

var _ portssvc.MaintenanceSvcFacade = (*maintenanceService)(nil)

func (s *maintenanceService) CreateMaintenance(ctx context.Context, dumpsterID string, req dto.CreateMaintenanceRequest) (*domain.MaintenanceRecord, error) {
	// The record must reference an existing dumpster.
	if _, err := s.dumpsterRepo.FindDumpsterByID(ctx, dumpsterID); err != nil {
		return nil, err
	}

	record := domain.MaintenanceRecord{
		MaintenanceID:   uuid.NewString(),
		DumpsterID:      dumpsterID,
		Reason:          req.Reason,
		Supplier:        req.Supplier,
		StartDate:       req.StartDate,
		ExpectedEndDate: req.ExpectedEndDate,
		EstimatedCost:   req.EstimatedCost,
		Notes:           req.Notes,
		Status:          domain.MaintenanceInProgress,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.maintenanceRepo.SaveMaintenance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save maintenance record: %w", err)
	}

	s.LogInfo(ctx, "Maintenance record created",
		slog.String("maintenance_id", record.MaintenanceID),
		slog.String("dumpster_id", dumpsterID))
	return &record, nil
}

func (s *maintenanceService) ListMaintenanceForDumpster(ctx context.Context, dumpsterID string) ([]domain.MaintenanceRecord, error) {
	records, err := s.maintenanceRepo.FindMaintenanceByDumpster(ctx, dumpsterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	return records, nil
}

func (s *maintenanceService) CompleteMaintenance(ctx context.Context, maintenanceID string, req dto.CompleteMaintenanceRequest) (*domain.MaintenanceRecord, error) {
	if err := s.maintenanceRepo.CompleteMaintenance(ctx, maintenanceID, time.Now().UTC(), req.ActualCost); err != nil {
		return nil, err
	}

	record, err := s.maintenanceRepo.FindMaintenanceByID(ctx, maintenanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload maintenance record %s: %w", maintenanceID, err)
	}

	s.LogInfo(ctx, "Maintenance record completed", slog.String("maintenance_id", maintenanceID))
	return record, nil
}
