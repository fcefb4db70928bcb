package dto

import (
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// CreateClientRequest carries the full mutable field set of a client. The
// same payload is used for updates (update replaces all mutable fields).
type CreateClientRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        string  `json:"phone" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	Document     string  `json:"document" binding:"required"`
	DocumentType string  `json:"document_type" binding:"required,oneof=cpf cnpj"`
}

// ClientResponse is the API view of a client.
type ClientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Document     string    `json:"document"`
	DocumentType string    `json:"document_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToClientResponse converts a domain.Client to its DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ClientID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		Document:     c.Document,
		DocumentType: string(c.DocumentType),
		CreatedAt:    c.CreatedAt,
	}
}

// ToClientResponseList converts a slice of domain clients.
func ToClientResponseList(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}
