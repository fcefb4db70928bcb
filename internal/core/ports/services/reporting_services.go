package services

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// ReportingSvcFacade computes the dashboard aggregates at request time.
type ReportingSvcFacade interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
