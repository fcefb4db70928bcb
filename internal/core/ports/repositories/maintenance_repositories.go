package repositories

import (
	"context"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaintenanceRepository persists dumpster maintenance records.
type MaintenanceRepository interface {
	SaveMaintenance(ctx context.Context, record domain.MaintenanceRecord) error
	FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceRecord, error)
	FindMaintenanceByDumpster(ctx context.Context, dumpsterID string) ([]domain.MaintenanceRecord, error)
	CompleteMaintenance(ctx context.Context, maintenanceID string, endedAt time.Time, actualCost *decimal.Decimal) error
}
