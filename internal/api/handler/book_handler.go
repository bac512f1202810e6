package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/catalog-api/internal/api/metrics"
	"github.com/bookhaven/catalog-api/internal/core/domain"
	"github.com/bookhaven/catalog-api/internal/core/ports"
)

// BookHandler serves the read-only catalog queries.
type BookHandler struct {
	catalog ports.CatalogService
}

func NewBookHandler(catalog ports.CatalogService) *BookHandler {
	return &BookHandler{catalog: catalog}
}

// List handles GET /books.
//
// @Summary      List every book in the catalog
// @Tags         books
// @Produce      json
// @Success      200  {array}  domain.Book
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("list", "hit").Inc()
	return c.JSON(http.StatusOK, books)
}

// GetByISBN handles GET /books/:isbn.
//
// @Summary      Get a single book by ISBN
// @Tags         books
// @Produce      json
// @Param        isbn  path      string  true  "Book ISBN"
// @Success      200   {object}  domain.Book
// @Failure      404   {object}  map[string]string
// @Router       /books/{isbn} [get]
func (h *BookHandler) GetByISBN(c echo.Context) error {
	book, err := h.catalog.GetByISBN(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			metrics.CatalogLookupsTotal.WithLabelValues("isbn", "miss").Inc()
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Book not found"})
		}
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("isbn", "hit").Inc()
	return c.JSON(http.StatusOK, book)
}

// GetByAuthor handles GET /books/author/:author — exact author match.
//
// @Summary      List books by an author
// @Tags         books
// @Produce      json
// @Param        author  path      string  true  "Author name (exact match)"
// @Success      200     {array}   domain.Book
// @Failure      404     {object}  map[string]string
// @Router       /books/author/{author} [get]
func (h *BookHandler) GetByAuthor(c echo.Context) error {
	books, err := h.catalog.GetByAuthor(c.Request().Context(), c.Param("author"))
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			metrics.CatalogLookupsTotal.WithLabelValues("author", "miss").Inc()
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No books found by this author"})
		}
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("author", "hit").Inc()
	return c.JSON(http.StatusOK, books)
}

// GetByTitle handles GET /books/title/:title — case-insensitive substring.
//
// @Summary      Search books by title substring
// @Tags         books
// @Produce      json
// @Param        title  path      string  true  "Title fragment (case-insensitive)"
// @Success      200    {array}   domain.Book
// @Failure      404    {object}  map[string]string
// @Router       /books/title/{title} [get]
func (h *BookHandler) GetByTitle(c echo.Context) error {
	books, err := h.catalog.SearchByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		if errors.Is(err, domain.ErrTitleNotFound) {
			metrics.CatalogLookupsTotal.WithLabelValues("title", "miss").Inc()
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No books found with this title"})
		}
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("title", "hit").Inc()
	return c.JSON(http.StatusOK, books)
}

// GetReviews handles GET /books/reviews/:isbn. A missing book and a book
// without reviews are both 404 at this boundary, with distinct messages.
//
// @Summary      List the reviews of a book
// @Tags         reviews
// @Produce      json
// @Param        isbn  path      string  true  "Book ISBN"
// @Success      200   {array}   domain.Review
// @Failure      404   {object}  map[string]string
// @Router       /books/reviews/{isbn} [get]
func (h *BookHandler) GetReviews(c echo.Context) error {
	reviews, err := h.catalog.GetReviews(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		metrics.CatalogLookupsTotal.WithLabelValues("reviews", "miss").Inc()
		switch {
		case errors.Is(err, domain.ErrNoReviews):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No reviews found for this book"})
		case errors.Is(err, domain.ErrBookNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Book not found"})
		}
		return err
	}
	metrics.CatalogLookupsTotal.WithLabelValues("reviews", "hit").Inc()
	return c.JSON(http.StatusOK, reviews)
}
