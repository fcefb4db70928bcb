package services

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// CEPSvcFacade looks up addresses on the external postal code service.
type CEPSvcFacade interface {
	// Lookup returns apperrors.ErrNotFound for an unknown CEP and
	// apperrors.ErrUpstreamUnavailable when the service cannot be reached.
	Lookup(ctx context.Context, cep string) (*domain.CEPAddress, error)
}
