package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDumpsterRepository struct {
	BaseRepository
}

func newPgxDumpsterRepository(db *pgxpool.Pool) portsrepo.DumpsterRepository {
	return &PgxDumpsterRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DumpsterRepository = (*PgxDumpsterRepository)(nil)

func (r *PgxDumpsterRepository) SaveDumpster(ctx context.Context, dumpster domain.Dumpster) error {
	query := `
        INSERT INTO dumpsters (dumpster_id, identifier, size, capacity, description, status, current_location, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		dumpster.DumpsterID,
		dumpster.Identifier,
		dumpster.Size,
		dumpster.Capacity,
		dumpster.Description,
		dumpster.Status,
		dumpster.CurrentLocation,
		dumpster.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save dumpster: %w", err)
	}
	return nil
}

func (r *PgxDumpsterRepository) FindDumpsterByID(ctx context.Context, dumpsterID string) (*domain.Dumpster, error) {
	query := `
		SELECT dumpster_id, identifier, size, capacity, description, status, current_location, created_at
		FROM dumpsters
		WHERE dumpster_id = $1;
	`
	var dumpster domain.Dumpster
	err := r.Pool.QueryRow(ctx, query, dumpsterID).Scan(
		&dumpster.DumpsterID,
		&dumpster.Identifier,
		&dumpster.Size,
		&dumpster.Capacity,
		&dumpster.Description,
		&dumpster.Status,
		&dumpster.CurrentLocation,
		&dumpster.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find dumpster by ID %s: %w", dumpsterID, err)
	}
	return &dumpster, nil
}

func (r *PgxDumpsterRepository) FindDumpsters(ctx context.Context) ([]domain.Dumpster, error) {
	query := `
        SELECT dumpster_id, identifier, size, capacity, description, status, current_location, created_at
        FROM dumpsters
        ORDER BY identifier;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dumpsters: %w", err)
	}
	defer rows.Close()

	dumpsters := []domain.Dumpster{}
	for rows.Next() {
		var dumpster domain.Dumpster
		err := rows.Scan(
			&dumpster.DumpsterID,
			&dumpster.Identifier,
			&dumpster.Size,
			&dumpster.Capacity,
			&dumpster.Description,
			&dumpster.Status,
			&dumpster.CurrentLocation,
			&dumpster.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dumpster row: %w", err)
		}
		dumpsters = append(dumpsters, dumpster)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating dumpster rows: %w", rows.Err())
	}

	return dumpsters, nil
}

func (r *PgxDumpsterRepository) UpdateDumpster(ctx context.Context, dumpster domain.Dumpster) error {
	query := `
        UPDATE dumpsters
        SET identifier = $1, size = $2, capacity = $3, description = $4
        WHERE dumpster_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		dumpster.Identifier,
		dumpster.Size,
		dumpster.Capacity,
		dumpster.Description,
		dumpster.DumpsterID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update dumpster query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDumpsterRepository) SetDumpsterStatus(ctx context.Context, dumpsterID string, status domain.DumpsterStatus, location *string) error {
	// A nil location leaves the stored value untouched. Clearing is reserved
	// for FreeDumpster.
	var query string
	var args []any
	if location != nil {
		query = `UPDATE dumpsters SET status = $1, current_location = $2 WHERE dumpster_id = $3;`
		args = []any{status, *location, dumpsterID}
	} else {
		query = `UPDATE dumpsters SET status = $1 WHERE dumpster_id = $2;`
		args = []any{status, dumpsterID}
	}

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set dumpster status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDumpsterRepository) FreeDumpster(ctx context.Context, dumpsterID string) error {
	query := `UPDATE dumpsters SET status = $1, current_location = NULL WHERE dumpster_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, domain.DumpsterAvailable, dumpsterID)
	if err != nil {
		return fmt.Errorf("failed to free dumpster: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDumpsterRepository) DeleteDumpster(ctx context.Context, dumpsterID string) error {
	// Maintenance records cascade with the dumpster (FK ON DELETE CASCADE).
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM dumpsters WHERE dumpster_id = $1;`, dumpsterID)
	if err != nil {
		return fmt.Errorf("failed to delete dumpster: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
