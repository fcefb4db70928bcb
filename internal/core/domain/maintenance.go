package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceStatus is the state of a maintenance intervention.
type MaintenanceStatus string

const (
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

// MaintenanceRecord is one maintenance intervention on a dumpster. Records
// are removed together with their dumpster (cascading delete).
type MaintenanceRecord struct {
	MaintenanceID   string            `json:"maintenanceID"`
	DumpsterID      string            `json:"dumpsterID"`
	Reason          *string           `json:"reason,omitempty"`
	Supplier        *string           `json:"supplier,omitempty"`
	StartDate       time.Time         `json:"startDate"`
	ExpectedEndDate *time.Time        `json:"expectedEndDate,omitempty"`
	ActualEndDate   *time.Time        `json:"actualEndDate,omitempty"`
	EstimatedCost   *decimal.Decimal  `json:"estimatedCost,omitempty"`
	ActualCost      *decimal.Decimal  `json:"actualCost,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	Status          MaintenanceStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}
