// internal/app/features/checkout/handler.go

// Package checkout starts hosted payment sessions for package upgrades.
// The server never sees card details; it hands the customer a provider
// URL and the provider redirects back to the site afterwards.
package checkout

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"assetverse/internal/app/system/httpjson"
	"assetverse/internal/app/system/normalize"
	"assetverse/internal/app/system/timeouts"
	"assetverse/internal/payment"
)

type Handler struct {
	Payments payment.SessionCreator
	// SiteDomain is the base for the success and cancel redirects,
	// e.g. "https://assetverse.example.com".
	SiteDomain string
	Log        *zap.Logger
}

func NewHandler(payments payment.SessionCreator, siteDomain string, logger *zap.Logger) *Handler {
	return &Handler{Payments: payments, SiteDomain: siteDomain, Log: logger}
}

type sessionRequest struct {
	PackageName   string  `json:"packageName"`
	Price         float64 `json:"price"`
	HrEmail       string  `json:"hrEmail"`
	EmployeeLimit int     `json:"employeeLimit"`
}

// HandleCreateSession handles POST /create-checkout-session.
func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var body sessionRequest
	if err := httpjson.Decode(r, &body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	email := normalize.Email(body.HrEmail)
	switch {
	case body.PackageName == "":
		httpjson.Error(w, http.StatusBadRequest, `missing required field "packageName"`)
		return
	case body.Price <= 0:
		httpjson.Error(w, http.StatusBadRequest, "price must be a positive number")
		return
	case email == "":
		httpjson.Error(w, http.StatusBadRequest, `missing required field "hrEmail"`)
		return
	case body.EmployeeLimit <= 0:
		httpjson.Error(w, http.StatusBadRequest, "employeeLimit must be a positive integer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// The {CHECKOUT_SESSION_ID} placeholder is substituted by the
	// provider on redirect, so it must survive literally.
	successURL := fmt.Sprintf("%s/upgrade-success?session_id={CHECKOUT_SESSION_ID}&email=%s&limit=%d",
		h.SiteDomain, url.QueryEscape(email), body.EmployeeLimit)
	cancelURL := h.SiteDomain + "/packages?canceled=true"

	sess, err := h.Payments.CreateSession(ctx, payment.SessionParams{
		PackageName:   body.PackageName,
		Price:         body.Price,
		CustomerEmail: email,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	})
	if err != nil {
		h.Log.Error("create checkout session failed",
			zap.String("package", body.PackageName),
			zap.String("email", email),
			zap.Error(err))
		httpjson.Error(w, http.StatusBadGateway, "could not create checkout session")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{"url": sess.URL})
}
