// internal/payment/payment.go

// Package payment creates hosted checkout sessions with the payment
// provider. Handlers depend on the SessionCreator interface so tests can
// substitute a fake provider.
package payment

import "context"

// SessionParams describes one checkout session for a package purchase.
// Price is in major currency units; the provider client converts it to
// the minor unit it bills in.
type SessionParams struct {
	PackageName   string
	Price         float64
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// Session is the created checkout session. URL is where the customer
// completes payment.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionCreator creates checkout sessions.
type SessionCreator interface {
	CreateSession(ctx context.Context, params SessionParams) (Session, error)
}
