// internal/app/system/auth/auth.go

// Package auth implements the authentication gate: bearer-credential
// extraction, verification through an external verifier, and principal
// propagation via the request context.
//
// The service never inspects credential internals itself; everything it
// knows about a caller is the verified email the Verifier yields. Any
// verification failure — a bad token or an unreachable verifier backend —
// terminates the request with 401 before the next gate or handler runs.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"assetverse/internal/app/system/httpjson"
)

const (
	authHeader   = "Authorization"
	bearerScheme = "Bearer "
)

// ErrInvalidToken indicates the credential failed verification.
var ErrInvalidToken = errors.New("invalid token")

// Principal is the authenticated identity attached to a request after the
// authentication gate passes.
type Principal struct {
	Email string
}

// Verifier validates a bearer credential and yields the principal it
// identifies. Implementations may call out to an external service; a
// failure of that call is indistinguishable from an invalid credential
// as far as response behavior is concerned.
type Verifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

type principalContextKey struct{}

// ContextWithPrincipal attaches the authenticated principal to the context.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFrom extracts the authenticated principal from the context.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	if !ok || p.Email == "" {
		return Principal{}, false
	}
	return p, true
}

// Require is the authentication gate. It rejects requests with a missing
// or unverifiable Authorization header and otherwise stores the principal
// in the request context for downstream gates and handlers.
func Require(v Verifier, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearerToken(r.Header.Get(authHeader))
			if err != nil {
				httpjson.Error(w, http.StatusUnauthorized, err.Error())
				return
			}

			principal, err := v.Verify(r.Context(), token)
			if err != nil {
				if !errors.Is(err, ErrInvalidToken) {
					log.Warn("credential verifier failed", zap.Error(err))
				}
				httpjson.Error(w, http.StatusUnauthorized, "invalid credential")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(r.Context(), principal)))
		})
	}
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearerScheme)) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(bearerScheme):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}
