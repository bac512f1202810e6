package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/catalog-api/internal/api/metrics"
	"github.com/bookhaven/catalog-api/internal/core/domain"
	"github.com/bookhaven/catalog-api/internal/core/ports"
)

// ReviewHandler exposes the review manager over HTTP.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type submitReviewRequest struct {
	Username string `json:"username" validate:"required"`
	Review   string `json:"review"`
	Password string `json:"password" validate:"required"`
}

type modifiedReviewResponse struct {
	Message string        `json:"message"`
	Review  domain.Review `json:"review"`
}

type bookNotFoundResponse struct {
	Error          string   `json:"error"`
	AvailableBooks []string `json:"availableBooks"`
}

// Submit handles POST /books/reviews/:isbn — the idempotent upsert.
// 201 when a new review is appended, 200 when an existing one is updated.
//
// @Summary      Add or modify the caller's review of a book
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        isbn  path      string               true  "Book ISBN"
// @Param        body  body      submitReviewRequest  true  "Review and credentials"
// @Success      200   {object}  modifiedReviewResponse
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  bookNotFoundResponse
// @Router       /books/reviews/{isbn} [post]
func (h *ReviewHandler) Submit(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	isbn := c.Param("isbn")
	result, err := h.reviews.Submit(c.Request().Context(), ports.SubmitReviewInput{
		ISBN:     isbn,
		Username: req.Username,
		Password: req.Password,
		Review:   req.Review,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAuthFailed) {
			metrics.ReviewErrorsTotal.WithLabelValues("auth_failed").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication failed"})
		}
		var nf *domain.BookNotFoundError
		if errors.As(err, &nf) {
			metrics.ReviewErrorsTotal.WithLabelValues("book_not_found").Inc()
			return c.JSON(http.StatusNotFound, bookNotFoundResponse{
				Error:          fmt.Sprintf("Book with ISBN %s not found", nf.ISBN),
				AvailableBooks: nf.Known,
			})
		}
		return err
	}

	if result.Created {
		metrics.ReviewsSubmittedTotal.WithLabelValues("created").Inc()
		return c.JSON(http.StatusCreated, map[string]string{"message": "Review submitted successfully"})
	}

	metrics.ReviewsSubmittedTotal.WithLabelValues("modified").Inc()
	return c.JSON(http.StatusOK, modifiedReviewResponse{
		Message: "Review modified successfully",
		Review:  result.Review,
	})
}

// Delete handles DELETE /books/reviews/:isbn/:username. No credential is
// checked — only the username path segment selects the review.
//
// @Summary      Delete a user's review of a book
// @Tags         reviews
// @Produce      json
// @Param        isbn      path      string  true  "Book ISBN"
// @Param        username  path      string  true  "Review owner"
// @Success      200       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /books/reviews/{isbn}/{username} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	isbn := c.Param("isbn")
	username := c.Param("username")

	err := h.reviews.Delete(c.Request().Context(), isbn, username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReviewNotFound):
			metrics.ReviewErrorsTotal.WithLabelValues("review_not_found").Inc()
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Review not found for this user"})
		case errors.Is(err, domain.ErrBookNotFound):
			metrics.ReviewErrorsTotal.WithLabelValues("book_not_found").Inc()
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Book not found"})
		}
		return err
	}

	metrics.ReviewsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}
