package authz_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"assetverse/internal/app/system/auth"
	"assetverse/internal/app/system/authz"
)

type stubLookup struct {
	role  string
	err   error
	calls int
}

func (s *stubLookup) RoleByEmail(_ context.Context, email string) (string, error) {
	s.calls++
	return s.role, s.err
}

func serveHR(t *testing.T, lookup authz.RoleLookup, principal string) (*httptest.ResponseRecorder, *bool) {
	t.Helper()
	handlerCalled := false
	h := authz.RequireHR(lookup, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest("POST", "/assets", nil)
	if principal != "" {
		req = req.WithContext(auth.ContextWithPrincipal(req.Context(), auth.Principal{Email: principal}))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, &handlerCalled
}

func TestRequireHR_NoPrincipal(t *testing.T) {
	lookup := &stubLookup{role: "hr"}
	rec, called := serveHR(t, lookup, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if *called {
		t.Error("handler must not run without a principal")
	}
	if lookup.calls != 0 {
		t.Error("role lookup must not run without a principal")
	}
}

func TestRequireHR_UnknownUser(t *testing.T) {
	rec, called := serveHR(t, &stubLookup{err: authz.ErrUnknownUser}, "ghost@x.com")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if *called {
		t.Error("handler must not run for an unknown user")
	}
}

func TestRequireHR_WrongRole(t *testing.T) {
	rec, called := serveHR(t, &stubLookup{role: "employee"}, "emp@x.com")

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
	if *called {
		t.Error("handler must not run for a non-HR user")
	}
}

func TestRequireHR_LookupFailure(t *testing.T) {
	rec, called := serveHR(t, &stubLookup{err: errors.New("store down")}, "hr@x.com")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if *called {
		t.Error("handler must not run when the lookup fails")
	}
}

func TestRequireHR_Allows(t *testing.T) {
	rec, called := serveHR(t, &stubLookup{role: "hr"}, "hr@x.com")

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !*called {
		t.Error("handler should run for an HR user")
	}
}

func TestRequireHR_RoleCaseInsensitive(t *testing.T) {
	rec, called := serveHR(t, &stubLookup{role: " HR "}, "hr@x.com")

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !*called {
		t.Error("handler should run when the stored role differs only in case")
	}
}
