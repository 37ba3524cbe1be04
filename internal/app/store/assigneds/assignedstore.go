// internal/app/store/assigneds/assignedstore.go

// Package assignedstore persists HR-to-employee assignment pairs. Emails
// are normalized on write and on delete so a pair can always be removed
// regardless of the casing the client sends.
package assignedstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assetverse/internal/app/system/normalize"
	"assetverse/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assigneds")}
}

// Create inserts an assignment pair, normalizing both emails.
func (s *Store) Create(ctx context.Context, doc bson.M) (models.InsertResult, error) {
	doc["hrEmail"] = normalize.Email(asString(doc["hrEmail"]))
	doc["epEmail"] = normalize.Email(asString(doc["epEmail"]))

	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.NewInsertResult(res), nil
}

// List returns every assignment document.
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

// DeleteByPair removes every assignment matching the normalized email
// pair. Removing a pair that does not exist is a successful no-op with
// DeletedCount 0.
func (s *Store) DeleteByPair(ctx context.Context, hrEmail, epEmail string) (models.DeleteResult, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{
		"hrEmail": normalize.Email(hrEmail),
		"epEmail": normalize.Email(epEmail),
	})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.NewDeleteResult(res), nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
