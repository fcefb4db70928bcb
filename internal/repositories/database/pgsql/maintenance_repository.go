package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxMaintenanceRepository struct {
	BaseRepository
}

func newPgxMaintenanceRepository(db *pgxpool.Pool) portsrepo.MaintenanceRepository {
	return &PgxMaintenanceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.MaintenanceRepository = (*PgxMaintenanceRepository)(nil)

const maintenanceColumns = `
	maintenance_id, dumpster_id, reason, supplier, start_date, expected_end_date,
	actual_end_date, estimated_cost, actual_cost, notes, status, created_at
`

func (r *PgxMaintenanceRepository) SaveMaintenance(ctx context.Context, record domain.MaintenanceRecord) error {
	query := `
        INSERT INTO dumpster_maintenance (
            maintenance_id, dumpster_id, reason, supplier, start_date,
            expected_end_date, actual_end_date, estimated_cost, actual_cost,
            notes, status, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		record.MaintenanceID,
		record.DumpsterID,
		record.Reason,
		record.Supplier,
		record.StartDate,
		record.ExpectedEndDate,
		record.ActualEndDate,
		record.EstimatedCost,
		record.ActualCost,
		record.Notes,
		record.Status,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save maintenance record: %w", err)
	}
	return nil
}

func (r *PgxMaintenanceRepository) FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM dumpster_maintenance WHERE maintenance_id = $1;`
	row := r.Pool.QueryRow(ctx, query, maintenanceID)
	record, err := scanMaintenance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance record by ID %s: %w", maintenanceID, err)
	}
	return record, nil
}

func (r *PgxMaintenanceRepository) FindMaintenanceByDumpster(ctx context.Context, dumpsterID string) ([]domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM dumpster_maintenance WHERE dumpster_id = $1 ORDER BY start_date DESC;`
	rows, err := r.Pool.Query(ctx, query, dumpsterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance records: %w", err)
	}
	defer rows.Close()

	records := []domain.MaintenanceRecord{}
	for rows.Next() {
		record, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance row: %w", err)
		}
		records = append(records, *record)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating maintenance rows: %w", rows.Err())
	}

	return records, nil
}

func (r *PgxMaintenanceRepository) CompleteMaintenance(ctx context.Context, maintenanceID string, endedAt time.Time, actualCost *decimal.Decimal) error {
	query := `
        UPDATE dumpster_maintenance
        SET status = $1, actual_end_date = $2, actual_cost = COALESCE($3, actual_cost)
        WHERE maintenance_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, domain.MaintenanceCompleted, endedAt, actualCost, maintenanceID)
	if err != nil {
		return fmt.Errorf("failed to complete maintenance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanMaintenance(row pgx.Row) (*domain.MaintenanceRecord, error) {
	var record domain.MaintenanceRecord
	err := row.Scan(
		&record.MaintenanceID,
		&record.DumpsterID,
		&record.Reason,
		&record.Supplier,
		&record.StartDate,
		&record.ExpectedEndDate,
		&record.ActualEndDate,
		&record.EstimatedCost,
		&record.ActualCost,
		&record.Notes,
		&record.Status,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
