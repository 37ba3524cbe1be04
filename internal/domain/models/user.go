// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored on user documents. The "hr" role is the sole
// authorization discriminant for privileged routes; every other value
// is an ordinary employee account.
const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// User is the typed view of a user document. Only the fields the service
// interprets (email for identity, role for authorization, packageLimit for
// the HR-limit and payment flows) are declared; clients may store additional
// fields, which pass through the store untouched as raw documents.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Role         string             `bson:"role" json:"role"`
	PackageLimit int                `bson:"packageLimit" json:"packageLimit"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
