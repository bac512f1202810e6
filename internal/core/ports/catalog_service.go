package ports

import (
	"context"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

// CatalogService is the read-only query façade over the catalog store.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	GetByAuthor(ctx context.Context, author string) ([]domain.Book, error)
	SearchByTitle(ctx context.Context, title string) ([]domain.Book, error)
	GetReviews(ctx context.Context, isbn string) ([]domain.Review, error)
}

// CatalogSeed loads the initial catalog from an external source. Seed
// failures are survivable: the service starts with an empty catalog.
type CatalogSeed interface {
	Load(ctx context.Context) ([]domain.Book, error)
}
