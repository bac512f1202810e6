package ports

import (
	"context"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

// CatalogRepository is the storage-side interface for the catalog store.
// Implementations must make UpsertReview and DeleteReview atomic: the
// scan of the review sequence and the write that follows it belong to a
// single critical section, so two concurrent submissions by the same user
// can never produce duplicate entries.
type CatalogRepository interface {
	// All returns every book in load order. Never fails.
	All(ctx context.Context) ([]domain.Book, error)

	// FindByISBN returns the book or a *domain.BookNotFoundError.
	FindByISBN(ctx context.Context, isbn string) (*domain.Book, error)

	// FindByAuthor matches the author field exactly. An empty result is
	// domain.ErrAuthorNotFound, not an empty success.
	FindByAuthor(ctx context.Context, author string) ([]domain.Book, error)

	// SearchByTitle does a case-insensitive substring match on titles.
	// An empty result is domain.ErrTitleNotFound.
	SearchByTitle(ctx context.Context, title string) ([]domain.Book, error)

	// Reviews returns the review sequence of a book. A missing book is
	// domain.ErrBookNotFound; an existing book with zero reviews is the
	// distinct domain.ErrNoReviews.
	Reviews(ctx context.Context, isbn string) ([]domain.Review, error)

	// UpsertReview inserts or replaces the review owned by review.Username
	// on the given book. Replacement preserves the review's position;
	// insertion appends. Reports whether a new entry was created.
	UpsertReview(ctx context.Context, isbn string, review domain.Review) (created bool, stored domain.Review, err error)

	// DeleteReview removes the review owned by username, preserving the
	// order of the remaining entries. Missing review is
	// domain.ErrReviewNotFound.
	DeleteReview(ctx context.Context, isbn, username string) error

	// KnownISBNs lists every catalog identifier, used for diagnostics on
	// failed review submissions.
	KnownISBNs(ctx context.Context) ([]string, error)

	// Replace swaps in a freshly seeded catalog.
	Replace(ctx context.Context, books []domain.Book) error
}
