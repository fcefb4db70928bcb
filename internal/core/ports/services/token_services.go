package services

import (
	"context"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// TokenSvcFacade issues signed bearer tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken returns a signed JWT with subject set to the user's
	// email plus its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
