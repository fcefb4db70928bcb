package services

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
)

// OrderSvcFacade orchestrates the order lifecycle and its side effects on
// dumpster state and receivables.
type OrderSvcFacade interface {
	// CreateOrder validates client and dumpster, persists the order with its
	// receivable and, for placement orders, rents the dumpster. Fails with
	// apperrors.ErrDumpsterUnavailable when a placement targets a dumpster
	// that is not available.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error)
	// UpdateOrderStatus sets any lifecycle status. Reaching completed stamps
	// completed_date; completing a removal order frees its dumpster.
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}
