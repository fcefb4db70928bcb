package dto

import (
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest carries the fields needed to open an order.
type CreateOrderRequest struct {
	ClientID        string          `json:"client_id" binding:"required"`
	DumpsterID      string          `json:"dumpster_id" binding:"required"`
	OrderType       string          `json:"order_type" binding:"required,oneof=placement removal exchange"`
	DeliveryAddress string          `json:"delivery_address" binding:"required"`
	RentalValue     decimal.Decimal `json:"rental_value" binding:"required"`
	PaymentMethod   string          `json:"payment_method" binding:"required,oneof=cash credit_card debit_card bank_transfer pix"`
	ScheduledDate   time.Time       `json:"scheduled_date" binding:"required"`
	Notes           *string         `json:"notes"`
}

// UpdateOrderStatusParams binds the query parameter of the order status patch.
// Any lifecycle value may be set; transition ordering is not enforced beyond
// the side effects of reaching completed.
type UpdateOrderStatusParams struct {
	Status string `form:"status" binding:"required,oneof=pending in_progress completed cancelled"`
}

// OrderResponse is the API view of an order, including the client name and
// dumpster identifier snapshots captured at creation.
type OrderResponse struct {
	ID                 string          `json:"id"`
	ClientID           string          `json:"client_id"`
	ClientName         string          `json:"client_name"`
	DumpsterID         string          `json:"dumpster_id"`
	DumpsterIdentifier string          `json:"dumpster_identifier"`
	OrderType          string          `json:"order_type"`
	Status             string          `json:"status"`
	DeliveryAddress    string          `json:"delivery_address"`
	RentalValue        decimal.Decimal `json:"rental_value"`
	PaymentMethod      string          `json:"payment_method"`
	ScheduledDate      time.Time       `json:"scheduled_date"`
	CompletedDate      *time.Time      `json:"completed_date,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ToOrderResponse converts a domain.Order to its DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.OrderID,
		ClientID:           o.ClientID,
		ClientName:         o.ClientName,
		DumpsterID:         o.DumpsterID,
		DumpsterIdentifier: o.DumpsterIdentifier,
		OrderType:          string(o.OrderType),
		Status:             string(o.Status),
		DeliveryAddress:    o.DeliveryAddress,
		RentalValue:        o.RentalValue,
		PaymentMethod:      string(o.PaymentMethod),
		ScheduledDate:      o.ScheduledDate,
		CompletedDate:      o.CompletedDate,
		Notes:              o.Notes,
		CreatedAt:          o.CreatedAt,
	}
}

// ToOrderResponseList converts a slice of domain orders.
func ToOrderResponseList(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}
