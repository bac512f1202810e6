package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBookNotFound = errors.New("book not found")
var ErrNoReviews = errors.New("no reviews found for this book")
var ErrReviewNotFound = errors.New("review not found for this user")
var ErrAuthorNotFound = errors.New("no books found by this author")
var ErrTitleNotFound = errors.New("no books found with this title")

// Review is a single user-submitted review. Within one book's review
// sequence there is at most one Review per username; the review manager
// enforces this with an upsert keyed by (isbn, username).
type Review struct {
	Username string `json:"username" bson:"username"`
	Review   string `json:"review" bson:"review"`
}

// Book is the catalog aggregate. Books are created only at seed load;
// after that the only mutation is the review sequence, and only through
// the review manager.
type Book struct {
	ISBN    string   `json:"ISBN" bson:"isbn"`
	Title   string   `json:"title" bson:"title"`
	Author  string   `json:"author" bson:"author"`
	Reviews []Review `json:"reviews" bson:"reviews"`
}

// ReviewBy returns the index of the review owned by username, or -1.
func (b *Book) ReviewBy(username string) int {
	for i, r := range b.Reviews {
		if r.Username == username {
			return i
		}
	}
	return -1
}

// BookNotFoundError is returned when a review mutation targets an unknown
// ISBN. It carries the list of known ISBNs so the boundary can echo them
// back as a diagnostic, matching the submission endpoint's contract.
type BookNotFoundError struct {
	ISBN  string
	Known []string
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("book with ISBN %s not found (known: %s)", e.ISBN, strings.Join(e.Known, ", "))
}

// Is makes errors.Is(err, ErrBookNotFound) match regardless of whether the
// caller got the bare sentinel or the diagnostic-carrying variant.
func (e *BookNotFoundError) Is(target error) bool {
	return target == ErrBookNotFound
}
