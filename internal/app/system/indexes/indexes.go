// internal/app/system/indexes/indexes.go

// Package indexes creates the MongoDB indexes the application depends on.
// EnsureAll runs at startup from the schema hook and is idempotent;
// creating an index that already exists is a no-op in MongoDB.
package indexes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureAll creates every index the stores rely on.
func EnsureAll(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	specs := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{
			collection: "users",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("email_unique"),
				},
			},
		},
		{
			collection: "assets",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetName("email_1"),
				},
			},
		},
		{
			collection: "assigneds",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "hrEmail", Value: 1}, {Key: "epEmail", Value: 1}},
					Options: options.Index().SetName("hrEmail_epEmail"),
				},
			},
		},
		{
			collection: "affiliations",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "hrEmail", Value: 1}, {Key: "epEmail", Value: 1}},
					Options: options.Index().SetName("hrEmail_epEmail"),
				},
			},
		},
	}

	for _, spec := range specs {
		names, err := db.Collection(spec.collection).Indexes().CreateMany(ctx, spec.models)
		if err != nil {
			return fmt.Errorf("create indexes for %s: %w", spec.collection, err)
		}
		log.Debug("ensured indexes",
			zap.String("collection", spec.collection),
			zap.Strings("indexes", names))
	}
	return nil
}
