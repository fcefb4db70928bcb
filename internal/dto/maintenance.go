package dto

import (
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest opens a maintenance record for a dumpster.
type CreateMaintenanceRequest struct {
	Reason          *string          `json:"reason"`
	Supplier        *string          `json:"supplier"`
	StartDate       time.Time        `json:"start_date" binding:"required"`
	ExpectedEndDate *time.Time       `json:"expected_end_date"`
	EstimatedCost   *decimal.Decimal `json:"estimated_cost"`
	Notes           *string          `json:"notes"`
}

// CompleteMaintenanceRequest closes a maintenance record.
type CompleteMaintenanceRequest struct {
	ActualCost *decimal.Decimal `json:"actual_cost"`
}

// MaintenanceResponse is the API view of a maintenance record.
type MaintenanceResponse struct {
	ID              string           `json:"id"`
	DumpsterID      string           `json:"dumpster_id"`
	Reason          *string          `json:"reason,omitempty"`
	Supplier        *string          `json:"supplier,omitempty"`
	StartDate       time.Time        `json:"start_date"`
	ExpectedEndDate *time.Time       `json:"expected_end_date,omitempty"`
	ActualEndDate   *time.Time       `json:"actual_end_date,omitempty"`
	EstimatedCost   *decimal.Decimal `json:"estimated_cost,omitempty"`
	ActualCost      *decimal.Decimal `json:"actual_cost,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ToMaintenanceResponse converts a domain.MaintenanceRecord to its DTO.
func ToMaintenanceResponse(m *domain.MaintenanceRecord) MaintenanceResponse {
	return MaintenanceResponse{
		ID:              m.MaintenanceID,
		DumpsterID:      m.DumpsterID,
		Reason:          m.Reason,
		Supplier:        m.Supplier,
		StartDate:       m.StartDate,
		ExpectedEndDate: m.ExpectedEndDate,
		ActualEndDate:   m.ActualEndDate,
		EstimatedCost:   m.EstimatedCost,
		ActualCost:      m.ActualCost,
		Notes:           m.Notes,
		Status:          string(m.Status),
		CreatedAt:       m.CreatedAt,
	}
}

// ToMaintenanceResponseList converts a slice of domain maintenance records.
func ToMaintenanceResponseList(records []domain.MaintenanceRecord) []MaintenanceResponse {
	out := make([]MaintenanceResponse, len(records))
	for i := range records {
		out[i] = ToMaintenanceResponse(&records[i])
	}
	return out
}
