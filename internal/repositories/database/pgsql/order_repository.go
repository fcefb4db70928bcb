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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepository {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.OrderRepository = (*PgxOrderRepository)(nil)

const orderColumns = `
	order_id, client_id, client_name, dumpster_id, dumpster_identifier,
	order_type, status, delivery_address, rental_value, payment_method,
	scheduled_date, completed_date, notes, created_at
`

// CreateOrder inserts the order, its receivable and (for placement orders)
// the dumpster status flip within a single database transaction.
func (r *PgxOrderRepository) CreateOrder(ctx context.Context, order domain.Order, receivable domain.AccountsReceivable, markRented bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits
	defer r.Rollback(ctx, tx)

	orderQuery := `
        INSERT INTO orders (
            order_id, client_id, client_name, dumpster_id, dumpster_identifier,
            order_type, status, delivery_address, rental_value, payment_method,
            scheduled_date, completed_date, notes, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err = tx.Exec(ctx, orderQuery,
		order.OrderID,
		order.ClientID,
		order.ClientName,
		order.DumpsterID,
		order.DumpsterIdentifier,
		order.OrderType,
		order.Status,
		order.DeliveryAddress,
		order.RentalValue,
		order.PaymentMethod,
		order.ScheduledDate,
		order.CompletedDate,
		order.Notes,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.OrderID, err)
	}

	if markRented {
		dumpsterQuery := `
			UPDATE dumpsters
			SET status = $1, current_location = $2
			WHERE dumpster_id = $3;
		`
		cmdTag, err := tx.Exec(ctx, dumpsterQuery, domain.DumpsterRented, order.DeliveryAddress, order.DumpsterID)
		if err != nil {
			return fmt.Errorf("failed to mark dumpster %s rented: %w", order.DumpsterID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}

	receivableQuery := `
        INSERT INTO accounts_receivable (
            receivable_id, client_id, client_name, order_id, amount, due_date,
            received_date, is_received, notes, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err = tx.Exec(ctx, receivableQuery,
		receivable.ReceivableID,
		receivable.ClientID,
		receivable.ClientName,
		receivable.OrderID,
		receivable.Amount,
		receivable.DueDate,
		receivable.ReceivedDate,
		receivable.IsReceived,
		receivable.Notes,
		receivable.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receivable for order %s: %w", order.OrderID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	row := r.Pool.QueryRow(ctx, query, orderID)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}
	return order, nil
}

func (r *PgxOrderRepository) FindOrders(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC;`
	return r.queryOrders(ctx, query)
}

func (r *PgxOrderRepository) FindOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE client_id = $1 ORDER BY created_at DESC;`
	return r.queryOrders(ctx, query, clientID)
}

func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, completedDate *time.Time) error {
	var cmdTag pgconn.CommandTag
	var err error
	if completedDate != nil {
		cmdTag, err = r.Pool.Exec(ctx,
			`UPDATE orders SET status = $1, completed_date = $2 WHERE order_id = $3;`,
			status, completedDate, orderID)
	} else {
		cmdTag, err = r.Pool.Exec(ctx,
			`UPDATE orders SET status = $1 WHERE order_id = $2;`,
			status, orderID)
	}
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	// Hard delete; the receivable intentionally stays behind.
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM orders WHERE order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, *order)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", rows.Err())
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.OrderID,
		&order.ClientID,
		&order.ClientName,
		&order.DumpsterID,
		&order.DumpsterIdentifier,
		&order.OrderType,
		&order.Status,
		&order.DeliveryAddress,
		&order.RentalValue,
		&order.PaymentMethod,
		&order.ScheduledDate,
		&order.CompletedDate,
		&order.Notes,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
