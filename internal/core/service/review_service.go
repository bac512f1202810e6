package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookhaven/catalog-api/internal/core/domain"
	"github.com/bookhaven/catalog-api/internal/core/ports"
)

// ReviewService enforces the one-review-per-user-per-book invariant. All
// review mutations in the system funnel through here.
type ReviewService struct {
	catalog  ports.CatalogRepository
	users    ports.UserRepository
	activity ports.ActivityPublisher
	log      zerolog.Logger
}

func NewReviewService(catalog ports.CatalogRepository, users ports.UserRepository, activity ports.ActivityPublisher, log zerolog.Logger) *ReviewService {
	return &ReviewService{catalog: catalog, users: users, activity: activity, log: log}
}

// Submit authenticates the caller, then upserts their review keyed by
// (isbn, username). A failed credential check aborts before any catalog
// access. Book resolution failures carry the known ISBNs via
// *domain.BookNotFoundError.
func (s *ReviewService) Submit(ctx context.Context, in ports.SubmitReviewInput) (*ports.SubmitReviewResult, error) {
	user, err := s.authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}

	created, stored, err := s.catalog.UpsertReview(ctx, in.ISBN, domain.Review{
		Username: user.Username,
		Review:   in.Review,
	})
	if err != nil {
		return nil, err
	}

	action := ports.ActivityModified
	if created {
		action = ports.ActivityCreated
	}
	s.publish(in.ISBN, user.Username, action)

	s.log.Info().
		Str("isbn", in.ISBN).
		Str("username", user.Username).
		Bool("created", created).
		Msg("review submitted")

	return &ports.SubmitReviewResult{Created: created, Review: stored}, nil
}

// Delete removes the review owned by username. Deletion is gated on the
// username match only, never on credentials.
func (s *ReviewService) Delete(ctx context.Context, isbn, username string) error {
	if err := s.catalog.DeleteReview(ctx, isbn, username); err != nil {
		return err
	}

	s.publish(isbn, username, ports.ActivityDeleted)

	s.log.Info().
		Str("isbn", isbn).
		Str("username", username).
		Msg("review deleted")

	return nil
}

// authenticate resolves identity the way login does: username-or-email
// plus an exact password match. A missing user and a wrong password are
// indistinguishable to the caller.
func (s *ReviewService) authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAuthFailed
		}
		return nil, err
	}
	if user.Password != password {
		return nil, domain.ErrAuthFailed
	}
	return user, nil
}

func (s *ReviewService) publish(isbn, username, action string) {
	if s.activity == nil {
		return
	}
	s.activity.Publish(ports.ReviewActivity{
		ISBN:     isbn,
		Username: username,
		Action:   action,
		At:       time.Now().UTC(),
	})
}
