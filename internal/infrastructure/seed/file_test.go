package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource_Load(t *testing.T) {
	src := NewFileSource(filepath.Join("testdata", "books.json"))

	books, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}

	first := books[0]
	if first.ISBN != "1111111111" || first.Title != "The First Book" || first.Author != "Author One" {
		t.Fatalf("unexpected first book: %+v", first)
	}
	if len(first.Reviews) != 1 || first.Reviews[0].Username != "user1" {
		t.Fatalf("unexpected reviews: %+v", first.Reviews)
	}

	// A record without a reviews field still gets an empty slice so the
	// API never serializes null.
	if books[1].Reviews == nil || len(books[1].Reviews) != 0 {
		t.Fatalf("expected empty review slice, got %+v", books[1].Reviews)
	}
}

func TestFileSource_Load_MissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.json"))

	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected an error for a missing seed file")
	}
}

func TestFileSource_Load_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"not":"an array"`), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewFileSource(path)
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected an error for malformed seed data")
	}
}
