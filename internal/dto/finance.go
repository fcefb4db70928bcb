package dto

import (
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayableRequest carries the fields of a new payable entry.
// Receivables have no create endpoint; they only appear as an order
// creation side effect.
type CreatePayableRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     time.Time       `json:"due_date" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Notes       *string         `json:"notes"`
}

// PayableResponse is the API view of a payable.
type PayableResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	PaidDate    *time.Time      `json:"paid_date,omitempty"`
	Category    string          `json:"category"`
	IsPaid      bool            `json:"is_paid"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ReceivableResponse is the API view of a receivable.
type ReceivableResponse struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	ClientName   string          `json:"client_name"`
	OrderID      string          `json:"order_id"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"due_date"`
	ReceivedDate *time.Time      `json:"received_date,omitempty"`
	IsReceived   bool            `json:"is_received"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToPayableResponse converts a domain.AccountsPayable to its DTO.
func ToPayableResponse(p *domain.AccountsPayable) PayableResponse {
	return PayableResponse{
		ID:          p.PayableID,
		Description: p.Description,
		Amount:      p.Amount,
		DueDate:     p.DueDate,
		PaidDate:    p.PaidDate,
		Category:    p.Category,
		IsPaid:      p.IsPaid,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

// ToPayableResponseList converts a slice of domain payables.
func ToPayableResponseList(payables []domain.AccountsPayable) []PayableResponse {
	out := make([]PayableResponse, len(payables))
	for i := range payables {
		out[i] = ToPayableResponse(&payables[i])
	}
	return out
}

// ToReceivableResponse converts a domain.AccountsReceivable to its DTO.
func ToReceivableResponse(r *domain.AccountsReceivable) ReceivableResponse {
	return ReceivableResponse{
		ID:           r.ReceivableID,
		ClientID:     r.ClientID,
		ClientName:   r.ClientName,
		OrderID:      r.OrderID,
		Amount:       r.Amount,
		DueDate:      r.DueDate,
		ReceivedDate: r.ReceivedDate,
		IsReceived:   r.IsReceived,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}

// ToReceivableResponseList converts a slice of domain receivables.
func ToReceivableResponseList(receivables []domain.AccountsReceivable) []ReceivableResponse {
	out := make([]ReceivableResponse, len(receivables))
	for i := range receivables {
		out[i] = ToReceivableResponse(&receivables[i])
	}
	return out
}
