package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookhaven/catalog-api/internal/core/domain"
)

const catalogCollection = "books"

// CatalogSeedSource loads the initial catalog from a MongoDB collection.
// It is strictly read-only: review mutations stay in memory and are never
// written back.
type CatalogSeedSource struct {
	coll *mongo.Collection
}

func NewCatalogSeedSource(db *mongo.Database) *CatalogSeedSource {
	return &CatalogSeedSource{coll: db.Collection(catalogCollection)}
}

func (s *CatalogSeedSource) Load(ctx context.Context) ([]domain.Book, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("seed: find books: %w", err)
	}
	defer cursor.Close(ctx)

	var books []domain.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("seed: decode books: %w", err)
	}

	for i := range books {
		if books[i].Reviews == nil {
			books[i].Reviews = []domain.Review{}
		}
	}
	return books, nil
}
