package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// buildTestHandler assembles the full router without requiring a running
// MongoDB: the driver connects lazily, and none of the exercised routes
// reach a store before a gate or validation failure answers the request.
func buildTestHandler(t *testing.T) http.Handler {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("lazy mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	appCfg := validAppConfig()
	appCfg.CORSAllowedOrigins = []string{"*"}
	deps := DBDeps{MongoClient: client, MongoDatabase: client.Database(appCfg.MongoDatabase)}

	h, err := BuildHandler(nil, appCfg, deps, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler failed: %v", err)
	}
	return h
}

func TestBuildHandler_CORSPreflight(t *testing.T) {
	h := buildTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: got %q, want %q", got, "*")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("preflight status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestBuildHandler_CORSActualRequest(t *testing.T) {
	h := buildTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: got %q, want %q", got, "*")
	}
}

// TestBuildHandler_GateTable pins which mounted routes demand a bearer
// credential. Every gated route must answer 401 to an anonymous request;
// the open routes must not.
func TestBuildHandler_GateTable(t *testing.T) {
	h := buildTestHandler(t)

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/users", http.StatusUnauthorized},
		{http.MethodGet, "/assets", http.StatusUnauthorized},
		{http.MethodPost, "/assets", http.StatusUnauthorized},
		{http.MethodGet, "/requests", http.StatusUnauthorized},
		{http.MethodPost, "/requests", http.StatusUnauthorized},
		{http.MethodPatch, "/requests/6543a1b2c3d4e5f678901234", http.StatusUnauthorized},
		{http.MethodPatch, "/hr-limit/hr@example.com", http.StatusUnauthorized},
		{http.MethodGet, "/affiliations", http.StatusUnauthorized},
		{http.MethodPost, "/affiliations", http.StatusUnauthorized},
		{http.MethodDelete, "/affiliations/6543a1b2c3d4e5f678901234", http.StatusUnauthorized},
		{http.MethodGet, "/assigneds", http.StatusUnauthorized},
		{http.MethodPost, "/assigneds", http.StatusUnauthorized},
		{http.MethodDelete, "/assigneds", http.StatusUnauthorized},
		{http.MethodPost, "/create-checkout-session", http.StatusUnauthorized},

		// Open routes: the liveness banner answers 200, and the open
		// user registration gets as far as body validation (400), never 401.
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodPost, "/users", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			if rec.Code != tt.want {
				t.Errorf("%s %s: got %d, want %d", tt.method, tt.target, rec.Code, tt.want)
			}
		})
	}
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"*", []string{"*"}},
		{"https://a.example, https://b.example", []string{"https://a.example", "https://b.example"}},
		{" https://a.example ,", []string{"https://a.example"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := splitOrigins(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitOrigins(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
