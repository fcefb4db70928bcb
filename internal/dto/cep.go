package dto

import "github.com/foxentulhos/dumpster_rental_app/internal/core/domain"

// CEPResponse is the API view of a postal code lookup.
type CEPResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// ToCEPResponse converts a domain.CEPAddress to its DTO.
func ToCEPResponse(a *domain.CEPAddress) CEPResponse {
	return CEPResponse{
		CEP:          a.CEP,
		Street:       a.Street,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}
