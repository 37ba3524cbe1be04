// internal/app/store/requests/requeststore.go
package requeststore

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
	return &Store{c: db.Collection("requests")}
}

// Create inserts a request document as supplied by the client.
func (s *Store) Create(ctx context.Context, doc bson.M) (models.InsertResult, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.NewInsertResult(res), nil
}

// List returns every request document.
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

// Patch merges the given fields into the request with the given ID.
// Fields not present in the patch are left untouched. A missing request
// yields MatchedCount 0, not an error.
func (s *Store) Patch(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.NewUpdateResult(res), nil
}
