package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"assetverse/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, collection string, doc bson.M) primitive.ObjectID {
	f.t.Helper()

	id := primitive.NewObjectID()
	doc["_id"] = id
	if _, err := f.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create test %s document: %v", collection, err)
	}
	return id
}

// CreateUser creates a test user with the given email and role.
func (f *Fixtures) CreateUser(ctx context.Context, email, role string) primitive.ObjectID {
	f.t.Helper()
	return f.insert(ctx, "users", bson.M{
		"email":      email,
		"name":       "Test User",
		"role":       role,
		"created_at": time.Now().UTC(),
	})
}

// CreateUserWithLimit creates a test user with a package limit set.
func (f *Fixtures) CreateUserWithLimit(ctx context.Context, email, role string, limit int) primitive.ObjectID {
	f.t.Helper()
	return f.insert(ctx, "users", bson.M{
		"email":        email,
		"name":         "Test User",
		"role":         role,
		"packageLimit": limit,
		"created_at":   time.Now().UTC(),
	})
}

// CreateAsset creates a test asset owned by the given email.
func (f *Fixtures) CreateAsset(ctx context.Context, email, name string) primitive.ObjectID {
	f.t.Helper()
	return f.insert(ctx, "assets", bson.M{
		"email":        email,
		"name":         name,
		"type":         "laptop",
		"quantity":     1,
		"availability": true,
	})
}

// CreateRequest creates a test asset request from the given email.
func (f *Fixtures) CreateRequest(ctx context.Context, email, assetName, status string) primitive.ObjectID {
	f.t.Helper()
	return f.insert(ctx, "requests", bson.M{
		"email":       email,
		"assetName":   assetName,
		"status":      status,
		"requestDate": time.Now().UTC(),
	})
}

// CreatePackage creates a test package with the given price and member limit.
func (f *Fixtures) CreatePackage(ctx context.Context, name string, price float64, limit int) primitive.ObjectID {
	f.t.Helper()
	return f.insert(ctx, "packages", bson.M{
		"name":    name,
		"price":   price,
		"members": limit,
	})
}

// CreateAffiliation creates a test affiliation request between two emails.
func (f *Fixtures) CreateAffiliation(ctx context.Context, hrEmail, epEmail, status string) primitive.ObjectID {
	f.t.Helper()

	aff := models.Affiliation{
		ID:      primitive.NewObjectID(),
		HrEmail: hrEmail,
		EpEmail: epEmail,
		Status:  status,
	}
	if _, err := f.db.Collection("affiliations").InsertOne(ctx, aff); err != nil {
		f.t.Fatalf("failed to create test affiliation: %v", err)
	}
	return aff.ID
}

// CreateAssignment creates a test assignment pair between two emails.
func (f *Fixtures) CreateAssignment(ctx context.Context, hrEmail, epEmail string) primitive.ObjectID {
	f.t.Helper()

	asg := models.Assignment{
		ID:      primitive.NewObjectID(),
		HrEmail: hrEmail,
		EpEmail: epEmail,
	}
	if _, err := f.db.Collection("assigneds").InsertOne(ctx, asg); err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return asg.ID
}
