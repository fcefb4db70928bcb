package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
	"github.com/google/uuid"
)

type orderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepository
	clientRepo   portsrepo.ClientRepository
	dumpsterRepo portsrepo.DumpsterRepository
}

// NewOrderService creates the order lifecycle service. It owns the side
// effects order creation and completion have on dumpster state and
// receivables.
func NewOrderService(orderRepo portsrepo.OrderRepository, clientRepo portsrepo.ClientRepository, dumpsterRepo portsrepo.DumpsterRepository) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:    orderRepo,
		clientRepo:   clientRepo,
		dumpsterRepo: dumpsterRepo,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	dumpster, err := s.dumpsterRepo.FindDumpsterByID(ctx, req.DumpsterID)
	if err != nil {
		return nil, err
	}

	orderType := domain.OrderType(req.OrderType)

	// Placement requires an available dumpster. Removal and exchange run
	// against whatever state the dumpster is in.
	if orderType == domain.OrderPlacement && dumpster.Status != domain.DumpsterAvailable {
		s.LogWarn(ctx, "Placement rejected, dumpster not available",
			slog.String("dumpster_id", dumpster.DumpsterID),
			slog.String("status", string(dumpster.Status)))
		return nil, apperrors.ErrDumpsterUnavailable
	}

	now := time.Now().UTC()
	order := domain.Order{
		OrderID:            uuid.NewString(),
		ClientID:           client.ClientID,
		ClientName:         client.Name,
		DumpsterID:         dumpster.DumpsterID,
		DumpsterIdentifier: dumpster.Identifier,
		OrderType:          orderType,
		Status:             domain.OrderPending,
		DeliveryAddress:    req.DeliveryAddress,
		RentalValue:        req.RentalValue,
		PaymentMethod:      domain.PaymentMethod(req.PaymentMethod),
		ScheduledDate:      req.ScheduledDate,
		Notes:              req.Notes,
		CreatedAt:          now,
	}

	receivable := domain.AccountsReceivable{
		ReceivableID: uuid.NewString(),
		ClientID:     client.ClientID,
		ClientName:   client.Name,
		OrderID:      order.OrderID,
		Amount:       order.RentalValue,
		DueDate:      order.ScheduledDate,
		IsReceived:   false,
		Notes:        fmt.Sprintf("Order %s - %s", orderType, dumpster.Identifier),
		CreatedAt:    now,
	}

	// Order insert, dumpster rent and receivable insert land in one
	// transaction so a crash cannot leave an order without its side effects.
	markRented := orderType == domain.OrderPlacement
	if err := s.orderRepo.CreateOrder(ctx, order, receivable, markRented); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.LogInfo(ctx, "Order created",
		slog.String("order_id", order.OrderID),
		slog.String("order_type", string(orderType)),
		slog.String("dumpster_id", dumpster.DumpsterID))
	return &order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindOrdersByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for client %s: %w", clientID, err)
	}
	return orders, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var completedDate *time.Time
	if status == domain.OrderCompleted {
		now := time.Now().UTC()
		completedDate = &now
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status, completedDate); err != nil {
		return nil, err
	}

	// Only a completed removal frees the dumpster. Placement and exchange
	// completions leave it rented.
	if status == domain.OrderCompleted && order.OrderType == domain.OrderRemoval {
		if err := s.dumpsterRepo.FreeDumpster(ctx, order.DumpsterID); err != nil {
			return nil, fmt.Errorf("failed to free dumpster %s: %w", order.DumpsterID, err)
		}
		s.LogInfo(ctx, "Dumpster freed after removal completion", slog.String("dumpster_id", order.DumpsterID))
	}

	order.Status = status
	order.CompletedDate = completedDate

	s.LogInfo(ctx, "Order status updated",
		slog.String("order_id", orderID),
		slog.String("status", string(status)))
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	// Hard delete. The receivable is left in place and dumpster state is not
	// restored.
	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Order deleted", slog.String("order_id", orderID))
	return nil
}
