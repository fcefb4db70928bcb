package services

import (
	"context"
	"fmt"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	// now is swappable for tests pinning the month boundary.
	now func() time.Time
}

// NewReportingService creates the dashboard aggregator.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboardStats computes the dashboard from current store state. Monthly
// revenue covers orders created since the first instant of the current
// calendar month in UTC.
func (s *reportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	data, err := s.reportingRepo.GetDashboardData(ctx, monthStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to read dashboard data")
		return nil, fmt.Errorf("failed to read dashboard data: %w", err)
	}

	stats := &domain.DashboardStats{
		TotalDumpsters:     data.TotalDumpsters,
		AvailableDumpsters: data.AvailableDumpsters,
		RentedDumpsters:    data.RentedDumpsters,
		ActiveOrders:       data.ActiveOrders,
		PendingOrders:      data.PendingOrders,
		TotalRevenueMonth:  data.RevenueMonth,
		TotalReceivable:    data.ReceivableOutstanding,
		TotalPayable:       data.PayableOutstanding,
		CashBalance:        data.ReceivableReceived.Sub(data.PayablePaid),
	}

	return stats, nil
}
