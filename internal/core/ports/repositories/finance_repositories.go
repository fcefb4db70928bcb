package repositories

import (
	"context"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// PayableRepository persists accounts payable.
type PayableRepository interface {
	SavePayable(ctx context.Context, payable domain.AccountsPayable) error
	FindPayables(ctx context.Context) ([]domain.AccountsPayable, error)
	// MarkPayablePaid flips is_paid true and stamps paid_date. Calling it on
	// an already paid entry refreshes paid_date.
	MarkPayablePaid(ctx context.Context, payableID string, paidAt time.Time) error
	DeletePayable(ctx context.Context, payableID string) error
}

// ReceivableRepository persists accounts receivable. Rows are only created
// through OrderRepository.CreateOrder.
type ReceivableRepository interface {
	FindReceivables(ctx context.Context) ([]domain.AccountsReceivable, error)
	MarkReceivableReceived(ctx context.Context, receivableID string, receivedAt time.Time) error
	DeleteReceivable(ctx context.Context, receivableID string) error
}
