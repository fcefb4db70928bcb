package dto

import (
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// CreateDumpsterRequest carries the mutable fields of a dumpster. Status and
// location are managed by the order lifecycle and the status patch, not here.
type CreateDumpsterRequest struct {
	Identifier  string  `json:"identifier" binding:"required"`
	Size        string  `json:"size" binding:"required"`
	Capacity    string  `json:"capacity" binding:"required"`
	Description *string `json:"description"`
}

// UpdateDumpsterStatusParams binds the query parameters of the status patch.
type UpdateDumpsterStatusParams struct {
	Status   string  `form:"status" binding:"required,oneof=available rented maintenance in_transit"`
	Location *string `form:"location"`
}

// DumpsterResponse is the API view of a dumpster.
type DumpsterResponse struct {
	ID              string    `json:"id"`
	Identifier      string    `json:"identifier"`
	Size            string    `json:"size"`
	Capacity        string    `json:"capacity"`
	Description     *string   `json:"description,omitempty"`
	Status          string    `json:"status"`
	CurrentLocation *string   `json:"current_location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToDumpsterResponse converts a domain.Dumpster to its DTO.
func ToDumpsterResponse(d *domain.Dumpster) DumpsterResponse {
	return DumpsterResponse{
		ID:              d.DumpsterID,
		Identifier:      d.Identifier,
		Size:            d.Size,
		Capacity:        d.Capacity,
		Description:     d.Description,
		Status:          string(d.Status),
		CurrentLocation: d.CurrentLocation,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDumpsterResponseList converts a slice of domain dumpsters.
func ToDumpsterResponseList(dumpsters []domain.Dumpster) []DumpsterResponse {
	out := make([]DumpsterResponse, len(dumpsters))
	for i := range dumpsters {
		out[i] = ToDumpsterResponse(&dumpsters[i])
	}
	return out
}
