package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountsPayable is money the business owes to a third party.
// It is created independently of orders.
type AccountsPayable struct {
	PayableID   string          `json:"payableID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	PaidDate    *time.Time      `json:"paidDate,omitempty"`
	Category    string          `json:"category"`
	IsPaid      bool            `json:"isPaid"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// AccountsReceivable is money a client owes the business. Exactly one
// receivable is created per order, at order creation time, for the order's
// rental value.
type AccountsReceivable struct {
	ReceivableID string          `json:"receivableID"`
	ClientID     string          `json:"clientID"`
	ClientName   string          `json:"clientName"`
	OrderID      string          `json:"orderID"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"dueDate"`
	ReceivedDate *time.Time      `json:"receivedDate,omitempty"`
	IsReceived   bool            `json:"isReceived"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}
