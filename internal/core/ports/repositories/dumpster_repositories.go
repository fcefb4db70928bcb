package repositories

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// DumpsterRepository persists dumpsters and their status.
type DumpsterRepository interface {
	SaveDumpster(ctx context.Context, dumpster domain.Dumpster) error
	FindDumpsterByID(ctx context.Context, dumpsterID string) (*domain.Dumpster, error)
	FindDumpsters(ctx context.Context) ([]domain.Dumpster, error)
	UpdateDumpster(ctx context.Context, dumpster domain.Dumpster) error
	// SetDumpsterStatus updates the status and, when location is non-nil,
	// the current location. A nil location leaves the stored value untouched.
	SetDumpsterStatus(ctx context.Context, dumpsterID string, status domain.DumpsterStatus, location *string) error
	// FreeDumpster marks the dumpster available and clears its location
	// (back in the yard). Used when a removal order completes.
	FreeDumpster(ctx context.Context, dumpsterID string) error
	DeleteDumpster(ctx context.Context, dumpsterID string) error
}
