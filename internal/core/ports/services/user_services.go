package services

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
)

// UserSvcFacade exposes account registration and credential checks.
type UserSvcFacade interface {
	// Register stores a new user with a hashed password. Fails with
	// apperrors.ErrDuplicate if the email is already registered.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// VerifyCredentials returns the user when email and password match, or
	// apperrors.ErrUnauthorized otherwise.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)
	// GetUserByEmail resolves a token subject back to a stored user.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
