// internal/app/system/authz/authz.go

// Package authz implements the role gate. It resolves the authenticated
// principal's stored role and only admits HR accounts to privileged routes.
//
// The role gate assumes the authentication gate already ran: a request
// that reaches it without a principal fails closed with 401 rather than
// being treated as an anonymous visitor.
package authz

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"assetverse/internal/app/system/auth"
	"assetverse/internal/app/system/httpjson"
	"assetverse/internal/app/system/normalize"
	"assetverse/internal/domain/models"
)

// ErrUnknownUser is returned by RoleLookup when the principal's email has
// no user record. An authenticated email without a record is an error, not
// an implicit "no role".
var ErrUnknownUser = errors.New("no user record for email")

// RoleLookup resolves a stored role by email. The user store implements it.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireHR is the role gate. Ordering matters: 401 without a principal,
// 404 when the principal has no user record, 403 for any non-HR role,
// 500 when the lookup itself fails. Exactly one response is written and
// the next handler never runs on failure.
func RequireHR(lookup RoleLookup, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.PrincipalFrom(r.Context())
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, "missing authenticated principal")
				return
			}

			role, err := lookup.RoleByEmail(r.Context(), principal.Email)
			if err != nil {
				if errors.Is(err, ErrUnknownUser) {
					httpjson.Error(w, http.StatusNotFound, "user not found")
					return
				}
				log.Error("role lookup failed",
					zap.String("email", principal.Email),
					zap.Error(err))
				httpjson.Error(w, http.StatusInternalServerError, "role lookup failed")
				return
			}

			if normalize.Role(role) != models.RoleHR {
				httpjson.Error(w, http.StatusForbidden, "HR role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
