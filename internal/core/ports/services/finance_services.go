package services

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
)

// FinanceSvcFacade exposes payable and receivable operations. Receivables
// are created only as an order-creation side effect.
type FinanceSvcFacade interface {
	CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.AccountsPayable, error)
	ListPayables(ctx context.Context) ([]domain.AccountsPayable, error)
	PayPayable(ctx context.Context, payableID string) error
	DeletePayable(ctx context.Context, payableID string) error

	ListReceivables(ctx context.Context) ([]domain.AccountsReceivable, error)
	ReceiveReceivable(ctx context.Context, receivableID string) error
	DeleteReceivable(ctx context.Context, receivableID string) error
}
