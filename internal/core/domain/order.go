package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType distinguishes delivery, pickup and swap orders.
type OrderType string

const (
	OrderPlacement OrderType = "placement"
	OrderRemoval   OrderType = "removal"
	OrderExchange  OrderType = "exchange"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// PaymentMethod is how the client pays for the rental.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentDebitCard    PaymentMethod = "debit_card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentPix          PaymentMethod = "pix"
)

// Order represents a dumpster placement, removal or exchange job.
// ClientName and DumpsterIdentifier are snapshots taken at creation time and
// are never re-synced when the client or dumpster is renamed later.
type Order struct {
	OrderID            string          `json:"orderID"`
	ClientID           string          `json:"clientID"`
	ClientName         string          `json:"clientName"`
	DumpsterID         string          `json:"dumpsterID"`
	DumpsterIdentifier string          `json:"dumpsterIdentifier"`
	OrderType          OrderType       `json:"orderType"`
	Status             OrderStatus     `json:"status"`
	DeliveryAddress    string          `json:"deliveryAddress"`
	RentalValue        decimal.Decimal `json:"rentalValue"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod"`
	ScheduledDate      time.Time       `json:"scheduledDate"`
	CompletedDate      *time.Time      `json:"completedDate,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}
