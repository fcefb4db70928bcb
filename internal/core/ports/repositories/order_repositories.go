package repositories

import (
	"context"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// OrderRepository persists orders and the writes that must land together
// with an order insert.
type OrderRepository interface {
	// CreateOrder inserts the order and its receivable in a single database
	// transaction. When markRented is true the target dumpster is flipped to
	// rented with its location set to the delivery address in the same
	// transaction.
	CreateOrder(ctx context.Context, order domain.Order, receivable domain.AccountsReceivable, markRented bool) error
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	FindOrders(ctx context.Context) ([]domain.Order, error)
	FindOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, completedDate *time.Time) error
	DeleteOrder(ctx context.Context, orderID string) error
}
