package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bookhaven/catalog-api/internal/core/domain"
	"github.com/bookhaven/catalog-api/internal/core/ports"
)

type stubCatalogRepo struct {
	books []domain.Book
}

func newStubCatalogRepo(isbns ...string) *stubCatalogRepo {
	r := &stubCatalogRepo{}
	for _, isbn := range isbns {
		r.books = append(r.books, domain.Book{ISBN: isbn, Reviews: []domain.Review{}})
	}
	return r
}

func (r *stubCatalogRepo) find(isbn string) *domain.Book {
	for i := range r.books {
		if r.books[i].ISBN == isbn {
			return &r.books[i]
		}
	}
	return nil
}

func (r *stubCatalogRepo) isbns() []string {
	out := make([]string, len(r.books))
	for i := range r.books {
		out[i] = r.books[i].ISBN
	}
	return out
}

func (r *stubCatalogRepo) All(_ context.Context) ([]domain.Book, error) { return r.books, nil }

func (r *stubCatalogRepo) FindByISBN(_ context.Context, isbn string) (*domain.Book, error) {
	if b := r.find(isbn); b != nil {
		return b, nil
	}
	return nil, &domain.BookNotFoundError{ISBN: isbn, Known: r.isbns()}
}

func (r *stubCatalogRepo) FindByAuthor(_ context.Context, _ string) ([]domain.Book, error) {
	return nil, domain.ErrAuthorNotFound
}

func (r *stubCatalogRepo) SearchByTitle(_ context.Context, _ string) ([]domain.Book, error) {
	return nil, domain.ErrTitleNotFound
}

func (r *stubCatalogRepo) Reviews(_ context.Context, isbn string) ([]domain.Review, error) {
	b := r.find(isbn)
	if b == nil {
		return nil, domain.ErrBookNotFound
	}
	if len(b.Reviews) == 0 {
		return nil, domain.ErrNoReviews
	}
	return b.Reviews, nil
}

func (r *stubCatalogRepo) UpsertReview(_ context.Context, isbn string, review domain.Review) (bool, domain.Review, error) {
	b := r.find(isbn)
	if b == nil {
		return false, domain.Review{}, &domain.BookNotFoundError{ISBN: isbn, Known: r.isbns()}
	}
	if i := b.ReviewBy(review.Username); i >= 0 {
		b.Reviews[i].Review = review.Review
		return false, b.Reviews[i], nil
	}
	b.Reviews = append(b.Reviews, review)
	return true, review, nil
}

func (r *stubCatalogRepo) DeleteReview(_ context.Context, isbn, username string) error {
	b := r.find(isbn)
	if b == nil {
		return domain.ErrBookNotFound
	}
	i := b.ReviewBy(username)
	if i < 0 {
		return domain.ErrReviewNotFound
	}
	b.Reviews = append(b.Reviews[:i], b.Reviews[i+1:]...)
	return nil
}

func (r *stubCatalogRepo) KnownISBNs(_ context.Context) ([]string, error) { return r.isbns(), nil }

func (r *stubCatalogRepo) Replace(_ context.Context, books []domain.Book) error {
	r.books = books
	return nil
}

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) Add(_ context.Context, username, email, password string) (*domain.User, error) {
	u := domain.User{ID: len(r.users) + 1, Username: username, Email: email, Password: password}
	r.users = append(r.users, u)
	return &u, nil
}

func (r *stubUserRepo) FindByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].MatchesIdentifier(identifier) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type recordingPublisher struct {
	activities []ports.ReviewActivity
}

func (p *recordingPublisher) Publish(a ports.ReviewActivity) {
	p.activities = append(p.activities, a)
}

func testUsers() *stubUserRepo {
	return &stubUserRepo{users: []domain.User{
		{ID: 1, Username: "user1", Email: "user1@example.com", Password: "password1"},
	}}
}

func TestReviewService_Submit_CreatesThenModifies(t *testing.T) {
	catalog := newStubCatalogRepo("1234567890")
	pub := &recordingPublisher{}
	svc := NewReviewService(catalog, testUsers(), pub, zerolog.Nop())
	ctx := context.Background()

	result, err := svc.Submit(ctx, ports.SubmitReviewInput{
		ISBN: "1234567890", Username: "user1", Password: "password1", Review: "Great!",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Created {
		t.Fatalf("first submission should report Created")
	}

	result, err = svc.Submit(ctx, ports.SubmitReviewInput{
		ISBN: "1234567890", Username: "user1", Password: "password1", Review: "Even better",
	})
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if result.Created {
		t.Fatalf("second submission should report Modified")
	}
	if result.Review.Review != "Even better" {
		t.Fatalf("unexpected stored review: %+v", result.Review)
	}

	reviews, err := catalog.Reviews(ctx, "1234567890")
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Review != "Even better" {
		t.Fatalf("upsert not idempotent: %+v", reviews)
	}

	if len(pub.activities) != 2 ||
		pub.activities[0].Action != ports.ActivityCreated ||
		pub.activities[1].Action != ports.ActivityModified {
		t.Fatalf("unexpected activity trail: %+v", pub.activities)
	}
}

func TestReviewService_Submit_EmailIdentifier(t *testing.T) {
	catalog := newStubCatalogRepo("1234567890")
	svc := NewReviewService(catalog, testUsers(), nil, zerolog.Nop())

	result, err := svc.Submit(context.Background(), ports.SubmitReviewInput{
		ISBN: "1234567890", Username: "user1@example.com", Password: "password1", Review: "nice",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	// The stored review carries the canonical username, not the email.
	if result.Review.Username != "user1" {
		t.Fatalf("expected review owned by user1, got %q", result.Review.Username)
	}
}

func TestReviewService_Submit_AuthFailed_NoMutation(t *testing.T) {
	catalog := newStubCatalogRepo("1234567890")
	svc := NewReviewService(catalog, testUsers(), nil, zerolog.Nop())
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "user1", "wrong"},
		{"unknown user", "ghost", "password1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, ports.SubmitReviewInput{
				ISBN: "1234567890", Username: tc.username, Password: tc.password, Review: "x",
			})
			if !errors.Is(err, domain.ErrAuthFailed) {
				t.Fatalf("expected ErrAuthFailed, got %v", err)
			}
		})
	}

	if _, err := catalog.Reviews(ctx, "1234567890"); !errors.Is(err, domain.ErrNoReviews) {
		t.Fatalf("failed auth must not mutate the catalog: %v", err)
	}
}

func TestReviewService_Submit_BookNotFound_CarriesKnownISBNs(t *testing.T) {
	catalog := newStubCatalogRepo("1234567890", "0987654321")
	svc := NewReviewService(catalog, testUsers(), nil, zerolog.Nop())

	_, err := svc.Submit(context.Background(), ports.SubmitReviewInput{
		ISBN: "nope", Username: "user1", Password: "password1", Review: "x",
	})
	var nf *domain.BookNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *BookNotFoundError, got %v", err)
	}
	if len(nf.Known) != 2 {
		t.Fatalf("expected 2 known ISBNs, got %v", nf.Known)
	}
}

func TestReviewService_Delete(t *testing.T) {
	catalog := newStubCatalogRepo("1234567890")
	pub := &recordingPublisher{}
	svc := NewReviewService(catalog, testUsers(), pub, zerolog.Nop())
	ctx := context.Background()

	// Deleting a review that was never submitted fails.
	if err := svc.Delete(ctx, "1234567890", "user1"); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}

	_, _ = svc.Submit(ctx, ports.SubmitReviewInput{
		ISBN: "1234567890", Username: "user1", Password: "password1", Review: "Great!",
	})

	// No credential needed for deletion.
	if err := svc.Delete(ctx, "1234567890", "user1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := catalog.Reviews(ctx, "1234567890"); !errors.Is(err, domain.ErrNoReviews) {
		t.Fatalf("review still present after delete: %v", err)
	}

	if err := svc.Delete(ctx, "nope", "user1"); !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}

	last := pub.activities[len(pub.activities)-1]
	if last.Action != ports.ActivityDeleted {
		t.Fatalf("expected deleted activity, got %+v", last)
	}
}
