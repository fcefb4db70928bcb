package domain

import "time"

// DumpsterStatus is the operational status of a dumpster.
type DumpsterStatus string

const (
	DumpsterAvailable   DumpsterStatus = "available"
	DumpsterRented      DumpsterStatus = "rented"
	DumpsterMaintenance DumpsterStatus = "maintenance"
	DumpsterInTransit   DumpsterStatus = "in_transit"
)

// Dumpster represents a rentable dumpster unit.
// Status is mutated by the order lifecycle (placement rents it, completed
// removal frees it) and by the explicit status-patch endpoint.
type Dumpster struct {
	DumpsterID      string         `json:"dumpsterID"`
	Identifier      string         `json:"identifier"`
	Size            string         `json:"size"`
	Capacity        string         `json:"capacity"`
	Description     *string        `json:"description,omitempty"`
	Status          DumpsterStatus `json:"status"`
	CurrentLocation *string        `json:"currentLocation,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}
