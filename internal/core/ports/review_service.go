package ports

import (
	"context"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

// SubmitReviewInput carries one review submission. Username and Password
// are the submitter's credentials; identity is resolved before any
// catalog mutation happens.
type SubmitReviewInput struct {
	ISBN     string
	Username string
	Password string
	Review   string
}

// SubmitReviewResult reports the outcome of an upsert.
type SubmitReviewResult struct {
	// Created is true when a new review was appended, false when an
	// existing review by the same user was modified in place.
	Created bool
	Review  domain.Review
}

// ReviewService is the review manager: the only component allowed to
// mutate a book's review sequence.
type ReviewService interface {
	// Submit authenticates the caller and then upserts their review,
	// keyed by (isbn, username). Repeated submissions never produce
	// duplicate entries.
	Submit(ctx context.Context, in SubmitReviewInput) (*SubmitReviewResult, error)

	// Delete removes the review owned by username. Not credential-gated;
	// the username match alone selects the review.
	Delete(ctx context.Context, isbn, username string) error
}
