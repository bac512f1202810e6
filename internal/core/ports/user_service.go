package ports

import (
	"context"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

// UserService implements registration, login, and profile lookup.
type UserService interface {
	// Register creates a user unconditionally; no duplicate-username
	// check is performed.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)

	// Login resolves identifier (username or email) and compares the
	// password byte-for-byte. On success it returns the user and a
	// signed bearer token; otherwise domain.ErrAuthFailed.
	Login(ctx context.Context, identifier, password string) (*domain.User, string, error)

	// Authenticate is Login without token issuance, used by the review
	// manager to gate submissions.
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)

	// Profile returns the user behind a username resolved from a token.
	Profile(ctx context.Context, username string) (*domain.User, error)
}
