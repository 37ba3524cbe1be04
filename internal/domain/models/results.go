// internal/domain/models/results.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// The result envelopes mirror the document store's native acknowledgement
// shapes, which successful responses relay unmodified.

// InsertResult acknowledges a single-document insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges an update, reporting how many documents the
// filter matched and how many were actually modified. A zero matched count
// is a successful no-op, not an error.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult acknowledges a delete with the number of documents removed.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// NewInsertResult converts a driver insert acknowledgement, rendering the
// generated ObjectID as its hex string.
func NewInsertResult(res *mongo.InsertOneResult) InsertResult {
	out := InsertResult{Acknowledged: true}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = id.Hex()
	}
	return out
}

// NewUpdateResult converts a driver update acknowledgement.
func NewUpdateResult(res *mongo.UpdateResult) UpdateResult {
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}

// NewDeleteResult converts a driver delete acknowledgement.
func NewDeleteResult(res *mongo.DeleteResult) DeleteResult {
	return DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}
