// internal/app/store/assets/assetstore.go
package assetstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assetverse/internal/app/system/normalize"
	"assetverse/internal/app/system/paging"
	"assetverse/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assets")}
}

// ListFilter narrows and pages an asset listing. Email restricts results
// to one owner; the zero Page means the whole set.
type ListFilter struct {
	Email string
	Page  paging.Window
}

// Create inserts an asset document as supplied by the client.
func (s *Store) Create(ctx context.Context, doc bson.M) (models.InsertResult, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.NewInsertResult(res), nil
}

// List returns the filtered page of asset documents together with the
// total count of documents matching the same filter, so callers can page
// without a second query.
func (s *Store) List(ctx context.Context, f ListFilter) ([]bson.M, int64, error) {
	filter := bson.M{}
	if f.Email != "" {
		filter["email"] = normalize.Email(f.Email)
	}

	opts := options.Find()
	f.Page.ApplyToFind(opts)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	count, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return docs, count, nil
}
