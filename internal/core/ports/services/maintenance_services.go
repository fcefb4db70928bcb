package services

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
)

// MaintenanceSvcFacade manages dumpster maintenance records.
type MaintenanceSvcFacade interface {
	CreateMaintenance(ctx context.Context, dumpsterID string, req dto.CreateMaintenanceRequest) (*domain.MaintenanceRecord, error)
	ListMaintenanceForDumpster(ctx context.Context, dumpsterID string) ([]domain.MaintenanceRecord, error)
	CompleteMaintenance(ctx context.Context, maintenanceID string, req dto.CompleteMaintenanceRequest) (*domain.MaintenanceRecord, error)
}
