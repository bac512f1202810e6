// Package memory holds the process-wide in-memory stores: the catalog of
// books and the user directory. Both guard all access with a single lock;
// the catalog has no cross-book concurrency requirement, so one coarse
// mutex over the whole store satisfies the atomicity the review upsert
// needs.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

// CatalogStore is the authoritative in-memory book catalog. Mutations are
// limited to Replace (seed load) and the two review operations; both
// review operations hold the write lock across their scan-then-write.
type CatalogStore struct {
	mu    sync.RWMutex
	books []domain.Book
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

func (s *CatalogStore) All(_ context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(), nil
}

func (s *CatalogStore) FindByISBN(_ context.Context, isbn string) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.books {
		if s.books[i].ISBN == isbn {
			b := cloneBook(s.books[i])
			return &b, nil
		}
	}
	return nil, &domain.BookNotFoundError{ISBN: isbn, Known: s.isbns()}
}

func (s *CatalogStore) FindByAuthor(_ context.Context, author string) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Book
	for i := range s.books {
		if s.books[i].Author == author {
			out = append(out, cloneBook(s.books[i]))
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrAuthorNotFound
	}
	return out, nil
}

func (s *CatalogStore) SearchByTitle(_ context.Context, title string) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(title)
	var out []domain.Book
	for i := range s.books {
		if strings.Contains(strings.ToLower(s.books[i].Title), needle) {
			out = append(out, cloneBook(s.books[i]))
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrTitleNotFound
	}
	return out, nil
}

func (s *CatalogStore) Reviews(_ context.Context, isbn string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book := s.find(isbn)
	if book == nil {
		return nil, domain.ErrBookNotFound
	}
	// "book missing" and "book has no reviews" stay distinct here even
	// though the HTTP boundary maps both to 404.
	if len(book.Reviews) == 0 {
		return nil, domain.ErrNoReviews
	}
	out := make([]domain.Review, len(book.Reviews))
	copy(out, book.Reviews)
	return out, nil
}

func (s *CatalogStore) UpsertReview(_ context.Context, isbn string, review domain.Review) (bool, domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.find(isbn)
	if book == nil {
		return false, domain.Review{}, &domain.BookNotFoundError{ISBN: isbn, Known: s.isbns()}
	}

	if i := book.ReviewBy(review.Username); i >= 0 {
		book.Reviews[i].Review = review.Review
		return false, book.Reviews[i], nil
	}

	book.Reviews = append(book.Reviews, review)
	return true, review, nil
}

func (s *CatalogStore) DeleteReview(_ context.Context, isbn, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.find(isbn)
	if book == nil {
		return domain.ErrBookNotFound
	}

	i := book.ReviewBy(username)
	if i < 0 {
		return domain.ErrReviewNotFound
	}

	book.Reviews = append(book.Reviews[:i], book.Reviews[i+1:]...)
	return nil
}

func (s *CatalogStore) KnownISBNs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isbns(), nil
}

func (s *CatalogStore) Replace(_ context.Context, books []domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = make([]domain.Book, len(books))
	for i := range books {
		s.books[i] = cloneBook(books[i])
	}
	return nil
}

// Len reports the current catalog size.
func (s *CatalogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// find returns a pointer into the backing slice; callers must hold the lock.
func (s *CatalogStore) find(isbn string) *domain.Book {
	for i := range s.books {
		if s.books[i].ISBN == isbn {
			return &s.books[i]
		}
	}
	return nil
}

func (s *CatalogStore) isbns() []string {
	out := make([]string, len(s.books))
	for i := range s.books {
		out[i] = s.books[i].ISBN
	}
	return out
}

func (s *CatalogStore) snapshot() []domain.Book {
	out := make([]domain.Book, len(s.books))
	for i := range s.books {
		out[i] = cloneBook(s.books[i])
	}
	return out
}

// cloneBook copies the review slice so readers never alias store memory.
func cloneBook(b domain.Book) domain.Book {
	c := b
	c.Reviews = make([]domain.Review, len(b.Reviews))
	copy(c.Reviews, b.Reviews)
	return c
}
