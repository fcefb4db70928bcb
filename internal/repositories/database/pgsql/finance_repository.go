package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayableRepository struct {
	BaseRepository
}

func newPgxPayableRepository(db *pgxpool.Pool) portsrepo.PayableRepository {
	return &PgxPayableRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PayableRepository = (*PgxPayableRepository)(nil)

func (r *PgxPayableRepository) SavePayable(ctx context.Context, payable domain.AccountsPayable) error {
	query := `
        INSERT INTO accounts_payable (
            payable_id, description, amount, due_date, paid_date, category,
            is_paid, notes, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		payable.PayableID,
		payable.Description,
		payable.Amount,
		payable.DueDate,
		payable.PaidDate,
		payable.Category,
		payable.IsPaid,
		payable.Notes,
		payable.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payable: %w", err)
	}
	return nil
}

func (r *PgxPayableRepository) FindPayables(ctx context.Context) ([]domain.AccountsPayable, error) {
	query := `
        SELECT payable_id, description, amount, due_date, paid_date, category,
               is_paid, notes, created_at
        FROM accounts_payable
        ORDER BY due_date;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payables: %w", err)
	}
	defer rows.Close()

	payables := []domain.AccountsPayable{}
	for rows.Next() {
		var p domain.AccountsPayable
		err := rows.Scan(
			&p.PayableID,
			&p.Description,
			&p.Amount,
			&p.DueDate,
			&p.PaidDate,
			&p.Category,
			&p.IsPaid,
			&p.Notes,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		payables = append(payables, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payable rows: %w", rows.Err())
	}

	return payables, nil
}

// MarkPayablePaid always stamps paid_date, so paying an already paid entry
// refreshes the timestamp.
func (r *PgxPayableRepository) MarkPayablePaid(ctx context.Context, payableID string, paidAt time.Time) error {
	query := `
        UPDATE accounts_payable
        SET is_paid = TRUE, paid_date = $1
        WHERE payable_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, paidAt, payableID)
	if err != nil {
		return fmt.Errorf("failed to mark payable paid: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPayableRepository) DeletePayable(ctx context.Context, payableID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts_payable WHERE payable_id = $1;`, payableID)
	if err != nil {
		return fmt.Errorf("failed to delete payable: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxReceivableRepository struct {
	BaseRepository
}

func newPgxReceivableRepository(db *pgxpool.Pool) portsrepo.ReceivableRepository {
	return &PgxReceivableRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReceivableRepository = (*PgxReceivableRepository)(nil)

func (r *PgxReceivableRepository) FindReceivables(ctx context.Context) ([]domain.AccountsReceivable, error) {
	query := `
        SELECT receivable_id, client_id, client_name, order_id, amount,
               due_date, received_date, is_received, notes, created_at
        FROM accounts_receivable
        ORDER BY due_date;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivables: %w", err)
	}
	defer rows.Close()

	receivables := []domain.AccountsReceivable{}
	for rows.Next() {
		var rec domain.AccountsReceivable
		err := rows.Scan(
			&rec.ReceivableID,
			&rec.ClientID,
			&rec.ClientName,
			&rec.OrderID,
			&rec.Amount,
			&rec.DueDate,
			&rec.ReceivedDate,
			&rec.IsReceived,
			&rec.Notes,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receivable row: %w", err)
		}
		receivables = append(receivables, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating receivable rows: %w", rows.Err())
	}

	return receivables, nil
}

func (r *PgxReceivableRepository) MarkReceivableReceived(ctx context.Context, receivableID string, receivedAt time.Time) error {
	query := `
        UPDATE accounts_receivable
        SET is_received = TRUE, received_date = $1
        WHERE receivable_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, receivedAt, receivableID)
	if err != nil {
		return fmt.Errorf("failed to mark receivable received: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReceivableRepository) DeleteReceivable(ctx context.Context, receivableID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts_receivable WHERE receivable_id = $1;`, receivableID)
	if err != nil {
		return fmt.Errorf("failed to delete receivable: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
