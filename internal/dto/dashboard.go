package dto

import (
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the API view of the dashboard aggregates.
type DashboardStatsResponse struct {
	TotalDumpsters     int             `json:"total_dumpsters"`
	AvailableDumpsters int             `json:"available_dumpsters"`
	RentedDumpsters    int             `json:"rented_dumpsters"`
	ActiveOrders       int             `json:"active_orders"`
	PendingOrders      int             `json:"pending_orders"`
	TotalRevenueMonth  decimal.Decimal `json:"total_revenue_month"`
	TotalReceivable    decimal.Decimal `json:"total_receivable"`
	TotalPayable       decimal.Decimal `json:"total_payable"`
	CashBalance        decimal.Decimal `json:"cash_balance"`
}

// ToDashboardStatsResponse converts the domain aggregate to its DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalDumpsters:     s.TotalDumpsters,
		AvailableDumpsters: s.AvailableDumpsters,
		RentedDumpsters:    s.RentedDumpsters,
		ActiveOrders:       s.ActiveOrders,
		PendingOrders:      s.PendingOrders,
		TotalRevenueMonth:  s.TotalRevenueMonth,
		TotalReceivable:    s.TotalReceivable,
		TotalPayable:       s.TotalPayable,
		CashBalance:        s.CashBalance,
	}
}
