// internal/app/store/affiliations/affiliationstore.go
package affiliationstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"assetverse/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("affiliations")}
}

// Create inserts an affiliation document as supplied by the client.
func (s *Store) Create(ctx context.Context, doc bson.M) (models.InsertResult, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.NewInsertResult(res), nil
}

// List returns every affiliation document.
func (s *Store) List(ctx context.Context) ([]bson.M, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// DeleteByID removes the affiliation with the given ID. Returns the
// number of documents deleted (0 or 1).
func (s *Store) DeleteByID(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.NewDeleteResult(res), nil
}
