// internal/domain/models/assignment.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Assignment links an HR account to an employee account. Both emails are
// stored lower-cased and trimmed so the composite delete filter can match
// without caring about the caller's casing.
type Assignment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HrEmail string             `bson:"hrEmail" json:"hrEmail"`
	EpEmail string             `bson:"epEmail" json:"epEmail"`
}

// Affiliation records a pending or accepted relationship between an HR
// account and an employee. Unlike assignments it is only ever removed by id.
type Affiliation struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HrEmail string             `bson:"hrEmail" json:"hrEmail"`
	EpEmail string             `bson:"epEmail" json:"epEmail"`
	Status  string             `bson:"status,omitempty" json:"status,omitempty"`
}
