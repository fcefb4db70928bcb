package domain

import "github.com/shopspring/decimal"

// DashboardData holds the raw aggregates read from the store in one pass.
// The reporting service derives DashboardStats from it.
type DashboardData struct {
	TotalDumpsters        int
	AvailableDumpsters    int
	RentedDumpsters       int
	ActiveOrders          int
	PendingOrders         int
	RevenueMonth          decimal.Decimal
	ReceivableOutstanding decimal.Decimal
	ReceivableReceived    decimal.Decimal
	PayableOutstanding    decimal.Decimal
	PayablePaid           decimal.Decimal
}

// DashboardStats is the aggregate view computed from current store state at
// request time. Monetary sums are exact decimal sums.
type DashboardStats struct {
	TotalDumpsters     int             `json:"totalDumpsters"`
	AvailableDumpsters int             `json:"availableDumpsters"`
	RentedDumpsters    int             `json:"rentedDumpsters"`
	ActiveOrders       int             `json:"activeOrders"`
	PendingOrders      int             `json:"pendingOrders"`
	TotalRevenueMonth  decimal.Decimal `json:"totalRevenueMonth"`
	TotalReceivable    decimal.Decimal `json:"totalReceivable"`
	TotalPayable       decimal.Decimal `json:"totalPayable"`
	CashBalance        decimal.Decimal `json:"cashBalance"`
}
