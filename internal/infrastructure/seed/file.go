// Package seed loads the initial catalog from an external source. The
// catalog is read once at startup; a failed load is survivable and leaves
// the service running with an empty catalog.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

// FileSource reads the catalog from a JSON document on disk: an array of
// book records with ISBN, title, author, and a possibly empty review list.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(_ context.Context) ([]domain.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", s.path, err)
	}

	var books []domain.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("seed: parse %s: %w", s.path, err)
	}

	for i := range books {
		if books[i].Reviews == nil {
			books[i].Reviews = []domain.Review{}
		}
	}
	return books, nil
}
