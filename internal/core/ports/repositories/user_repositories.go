package repositories

import (
	"context"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
)

// UserRepository persists operator accounts. Email is the unique lookup key
// because it is the token subject.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
