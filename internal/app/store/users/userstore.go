// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assetverse/internal/app/system/authz"
	"assetverse/internal/app/system/normalize"
	"assetverse/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateEmail is returned when attempting to create a user with an
// email that already exists.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a user document as supplied by the client. The email is
// normalized before insert so role lookups and the unique index agree on
// one canonical form; every other field is stored as-is.
func (s *Store) Create(ctx context.Context, doc bson.M) (models.InsertResult, error) {
	doc["email"] = normalize.Email(asString(doc["email"]))
	doc["created_at"] = time.Now().UTC()

	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.InsertResult{}, ErrDuplicateEmail
		}
		return models.InsertResult{}, err
	}
	return models.NewInsertResult(res), nil
}

// List returns every user document.
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

// RoleByEmail resolves the stored role for an email. Returns
// authz.ErrUnknownUser when no user document exists for the email.
func (s *Store) RoleByEmail(ctx context.Context, email string) (string, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", authz.ErrUnknownUser
		}
		return "", err
	}
	return u.Role, nil
}

// UpdatePackageLimit sets the packageLimit field on the user with the
// given email. A missing user yields MatchedCount 0, not an error.
func (s *Store) UpdatePackageLimit(ctx context.Context, email string, limit int) (models.UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email)},
		bson.M{"$set": bson.M{"packageLimit": limit}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.NewUpdateResult(res), nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
