package repositories

import (
	"context"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// ReportingRepository reads the raw aggregates for the dashboard. No caching
// or incremental maintenance; every call reflects current store state.
type ReportingRepository interface {
	// GetDashboardData returns counts and decimal sums. monthStart bounds the
	// monthly revenue sum (orders created at or after it).
	GetDashboardData(ctx context.Context, monthStart time.Time) (*domain.DashboardData, error)
}
