package ports

import (
	"context"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

// UserRepository is the storage-side interface for the user directory.
type UserRepository interface {
	// Add stores a new user and assigns the next sequential identifier.
	Add(ctx context.Context, username, email, password string) (*domain.User, error)

	// FindByIdentifier matches identifier against username or email;
	// the first matching user wins. Missing user is domain.ErrUserNotFound.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)

	// FindByUsername matches the username field only.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
