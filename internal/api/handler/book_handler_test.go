package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

type stubCatalogService struct {
	listFn       func(ctx context.Context) ([]domain.Book, error)
	getByISBNFn  func(ctx context.Context, isbn string) (*domain.Book, error)
	getByAuthor  func(ctx context.Context, author string) ([]domain.Book, error)
	searchTitle  func(ctx context.Context, title string) ([]domain.Book, error)
	getReviewsFn func(ctx context.Context, isbn string) ([]domain.Review, error)
}

func (s *stubCatalogService) List(ctx context.Context) ([]domain.Book, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	return s.getByISBNFn(ctx, isbn)
}

func (s *stubCatalogService) GetByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	return s.getByAuthor(ctx, author)
}

func (s *stubCatalogService) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	return s.searchTitle(ctx, title)
}

func (s *stubCatalogService) GetReviews(ctx context.Context, isbn string) ([]domain.Review, error) {
	return s.getReviewsFn(ctx, isbn)
}

func getContext(e *echo.Echo, target string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	return c, rec
}

func TestBookHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		listFn: func(_ context.Context) ([]domain.Book, error) {
			return []domain.Book{
				{ISBN: "1234567890", Title: "Things Fall Apart", Author: "Chinua Achebe", Reviews: []domain.Review{}},
				{ISBN: "0987654321", Title: "Fairy tales", Author: "Hans Christian Andersen", Reviews: []domain.Review{}},
			}, nil
		},
	}
	handler := NewBookHandler(stub)

	c, rec := getContext(e, "/books")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var books []domain.Book
	if err := json.Unmarshal(rec.Body.Bytes(), &books); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(books) != 2 || books[0].ISBN != "1234567890" {
		t.Fatalf("unexpected books: %+v", books)
	}
}

func TestBookHandler_GetByISBN(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		getByISBNFn: func(_ context.Context, isbn string) (*domain.Book, error) {
			if isbn != "1234567890" {
				return nil, domain.ErrBookNotFound
			}
			return &domain.Book{ISBN: isbn, Title: "Things Fall Apart", Author: "Chinua Achebe", Reviews: []domain.Review{}}, nil
		},
	}
	handler := NewBookHandler(stub)

	c, rec := getContext(e, "/books/1234567890", "isbn", "1234567890")
	if err := handler.GetByISBN(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var book domain.Book
	if err := json.Unmarshal(rec.Body.Bytes(), &book); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if book.Title != "Things Fall Apart" {
		t.Fatalf("unexpected book: %+v", book)
	}

	c, rec = getContext(e, "/books/zzz", "isbn", "zzz")
	_ = handler.GetByISBN(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Book not found" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBookHandler_GetByAuthor_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		getByAuthor: func(_ context.Context, _ string) ([]domain.Book, error) {
			return nil, domain.ErrAuthorNotFound
		},
	}
	handler := NewBookHandler(stub)

	c, rec := getContext(e, "/books/author/Nobody", "author", "Nobody")
	_ = handler.GetByAuthor(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "No books found by this author" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBookHandler_GetByTitle_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		searchTitle: func(_ context.Context, _ string) ([]domain.Book, error) {
			return nil, domain.ErrTitleNotFound
		},
	}
	handler := NewBookHandler(stub)

	c, rec := getContext(e, "/books/title/xyzzy", "title", "xyzzy")
	_ = handler.GetByTitle(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "No books found with this title" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBookHandler_GetReviews(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		errMsg string
	}{
		{"no reviews", domain.ErrNoReviews, http.StatusNotFound, "No reviews found for this book"},
		{"book missing", domain.ErrBookNotFound, http.StatusNotFound, "Book not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			stub := &stubCatalogService{
				getReviewsFn: func(_ context.Context, _ string) ([]domain.Review, error) {
					return nil, tc.err
				},
			}
			handler := NewBookHandler(stub)

			c, rec := getContext(e, "/books/reviews/1234567890", "isbn", "1234567890")
			_ = handler.GetReviews(c)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			var resp map[string]string
			_ = json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp["error"] != tc.errMsg {
				t.Fatalf("expected %q, got %s", tc.errMsg, rec.Body.String())
			}
		})
	}

	e := echo.New()
	stub := &stubCatalogService{
		getReviewsFn: func(_ context.Context, _ string) ([]domain.Review, error) {
			return []domain.Review{{Username: "user1", Review: "Great!"}}, nil
		},
	}
	handler := NewBookHandler(stub)

	c, rec := getContext(e, "/books/reviews/1234567890", "isbn", "1234567890")
	if err := handler.GetReviews(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var reviews []domain.Review
	if err := json.Unmarshal(rec.Body.Bytes(), &reviews); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Username != "user1" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}
