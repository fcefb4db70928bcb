package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDashboardData reads every aggregate the dashboard needs in three
// queries. COALESCE keeps the decimal sums at zero on empty tables.
func (r *PgxReportingRepository) GetDashboardData(ctx context.Context, monthStart time.Time) (*domain.DashboardData, error) {
	data := &domain.DashboardData{}

	dumpsterOrderQuery := `
        SELECT
            (SELECT COUNT(*) FROM dumpsters),
            (SELECT COUNT(*) FROM dumpsters WHERE status = 'available'),
            (SELECT COUNT(*) FROM dumpsters WHERE status = 'rented'),
            (SELECT COUNT(*) FROM orders WHERE status IN ('pending', 'in_progress')),
            (SELECT COUNT(*) FROM orders WHERE status = 'pending'),
            (SELECT COALESCE(SUM(rental_value), 0) FROM orders WHERE created_at >= $1);
    `
	err := r.Pool.QueryRow(ctx, dumpsterOrderQuery, monthStart).Scan(
		&data.TotalDumpsters,
		&data.AvailableDumpsters,
		&data.RentedDumpsters,
		&data.ActiveOrders,
		&data.PendingOrders,
		&data.RevenueMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query dumpster and order aggregates: %w", err)
	}

	receivableQuery := `
        SELECT
            COALESCE(SUM(amount) FILTER (WHERE NOT is_received), 0),
            COALESCE(SUM(amount) FILTER (WHERE is_received), 0)
        FROM accounts_receivable;
    `
	err = r.Pool.QueryRow(ctx, receivableQuery).Scan(
		&data.ReceivableOutstanding,
		&data.ReceivableReceived,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivable aggregates: %w", err)
	}

	payableQuery := `
        SELECT
            COALESCE(SUM(amount) FILTER (WHERE NOT is_paid), 0),
            COALESCE(SUM(amount) FILTER (WHERE is_paid), 0)
        FROM accounts_payable;
    `
	err = r.Pool.QueryRow(ctx, payableQuery).Scan(
		&data.PayableOutstanding,
		&data.PayablePaid,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query payable aggregates: %w", err)
	}

	return data, nil
}
