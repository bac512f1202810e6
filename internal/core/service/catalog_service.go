package service

import (
	"context"

	"github.com/bookhaven/catalog-api/internal/core/domain"
	"github.com/bookhaven/catalog-api/internal/core/ports"
)

// CatalogService is the read-only query façade. It adds nothing on top of
// the store beyond the service boundary itself; all matching conventions
// (exact author, case-insensitive title substring, empty-result-as-error)
// live in the repository.
type CatalogService struct {
	catalog ports.CatalogRepository
}

func NewCatalogService(catalog ports.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Book, error) {
	return s.catalog.All(ctx)
}

func (s *CatalogService) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	return s.catalog.FindByISBN(ctx, isbn)
}

func (s *CatalogService) GetByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	return s.catalog.FindByAuthor(ctx, author)
}

func (s *CatalogService) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	return s.catalog.SearchByTitle(ctx, title)
}

func (s *CatalogService) GetReviews(ctx context.Context, isbn string) ([]domain.Review, error) {
	return s.catalog.Reviews(ctx, isbn)
}
