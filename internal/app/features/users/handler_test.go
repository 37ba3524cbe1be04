package users_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"assetverse/internal/app/features/users"
	userstore "assetverse/internal/app/store/users"
	"assetverse/internal/domain/models"
	"assetverse/internal/testutil"
)

type fakeStore struct {
	createDoc  bson.M
	createErr  error
	listDocs   []bson.M
	listErr    error
	limitEmail string
	limitValue int
	limitErr   error
}

func (f *fakeStore) Create(_ context.Context, doc bson.M) (models.InsertResult, error) {
	f.createDoc = doc
	if f.createErr != nil {
		return models.InsertResult{}, f.createErr
	}
	return models.InsertResult{Acknowledged: true, InsertedID: "abc123"}, nil
}

func (f *fakeStore) List(_ context.Context) ([]bson.M, error) {
	return f.listDocs, f.listErr
}

func (f *fakeStore) UpdatePackageLimit(_ context.Context, email string, limit int) (models.UpdateResult, error) {
	f.limitEmail = email
	f.limitValue = limit
	if f.limitErr != nil {
		return models.UpdateResult{}, f.limitErr
	}
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestHandleCreateUser(t *testing.T) {
	store := &fakeStore{}
	h := users.NewHandler(store, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/users", map[string]any{
		"email": "new@example.com",
		"name":  "New User",
		"role":  "employee",
	})
	rec := httptest.NewRecorder()
	h.HandleCreateUser(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	body := testutil.DecodeBody(t, rec.Body)
	if body["insertedId"] != "abc123" {
		t.Errorf("insertedId: got %v, want %q", body["insertedId"], "abc123")
	}
	if store.createDoc["role"] != "employee" {
		t.Errorf("stored role: got %v", store.createDoc["role"])
	}
}

func TestHandleCreateUser_MissingEmail(t *testing.T) {
	h := users.NewHandler(&fakeStore{}, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/users", map[string]any{"name": "No Email"})
	rec := httptest.NewRecorder()
	h.HandleCreateUser(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := testutil.DecodeBody(t, rec.Body)
	if msg, _ := body["error"].(string); msg == "" {
		t.Error("expected an error envelope")
	}
}

func TestHandleCreateUser_MalformedBody(t *testing.T) {
	h := users.NewHandler(&fakeStore{}, zap.NewNop())

	req := httptest.NewRequest("POST", "/users", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.HandleCreateUser(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleCreateUser_DuplicateEmail(t *testing.T) {
	h := users.NewHandler(&fakeStore{createErr: userstore.ErrDuplicateEmail}, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/users", map[string]any{"email": "dup@example.com"})
	rec := httptest.NewRecorder()
	h.HandleCreateUser(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestServeUsersList(t *testing.T) {
	store := &fakeStore{listDocs: []bson.M{{"email": "a@example.com"}, {"email": "b@example.com"}}}
	h := users.NewHandler(store, zap.NewNop())

	req := testutil.NewRequest("GET", "/users")
	rec := httptest.NewRecorder()
	h.ServeUsersList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "a@example.com") {
		t.Error("expected listing to include stored users")
	}
}

func TestServeUsersList_StoreFailure(t *testing.T) {
	h := users.NewHandler(&fakeStore{listErr: errors.New("down")}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeUsersList(rec, testutil.NewRequest("GET", "/users"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestHandleUpdateLimit(t *testing.T) {
	store := &fakeStore{}
	h := users.NewHandler(store, zap.NewNop())

	req := testutil.NewJSONRequest(t, "PATCH", "/hr-limit/hr@example.com", map[string]any{"employeeLimit": 40})
	req = testutil.WithChiURLParam(req, "email", "hr@example.com")
	rec := httptest.NewRecorder()
	h.HandleUpdateLimit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if store.limitEmail != "hr@example.com" || store.limitValue != 40 {
		t.Errorf("store call: got %q/%d, want hr@example.com/40", store.limitEmail, store.limitValue)
	}
	body := testutil.DecodeBody(t, rec.Body)
	if body["matchedCount"] != float64(1) {
		t.Errorf("matchedCount: got %v, want 1", body["matchedCount"])
	}
}

func TestHandleUpdateLimit_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing field", map[string]any{}},
		{"negative limit", map[string]any{"employeeLimit": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := users.NewHandler(&fakeStore{}, zap.NewNop())
			req := testutil.NewJSONRequest(t, "PATCH", "/hr-limit/hr@example.com", tt.body)
			req = testutil.WithChiURLParam(req, "email", "hr@example.com")
			rec := httptest.NewRecorder()
			h.HandleUpdateLimit(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}
