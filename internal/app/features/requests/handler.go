// internal/app/features/requests/handler.go

// Package requests serves asset requests: employees file them, anyone
// authenticated can browse them, and HR resolves them by patching status
// and related fields.
package requests

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"assetverse/internal/app/system/httpjson"
	"assetverse/internal/app/system/timeouts"
	"assetverse/internal/domain/models"
)

// Store is the slice of the request store the handlers need.
type Store interface {
	Create(ctx context.Context, doc bson.M) (models.InsertResult, error)
	List(ctx context.Context) ([]bson.M, error)
	Patch(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.UpdateResult, error)
}

type Handler struct {
	Store Store
	Log   *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// HandleCreateRequest handles POST /requests.
func (h *Handler) HandleCreateRequest(w http.ResponseWriter, r *http.Request) {
	doc, err := httpjson.DecodeDocument(r)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := httpjson.RequireStrings(doc, "email", "assetName"); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Store.Create(ctx, doc)
	if err != nil {
		h.Log.Error("create request failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create request")
		return
	}
	httpjson.Respond(w, http.StatusCreated, res)
}

// ServeRequestsList handles GET /requests.
func (h *Handler) ServeRequestsList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list requests failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list requests")
		return
	}
	httpjson.Respond(w, http.StatusOK, docs)
}

// HandlePatchRequest handles PATCH /requests/{id}. The body is merged
// into the document; fields not named are left untouched. Patching a
// request that does not exist is a no-op reported through the counts.
func (h *Handler) HandlePatchRequest(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "malformed request id")
		return
	}

	fields, err := httpjson.DecodeDocument(r)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Store.Patch(ctx, id, fields)
	if err != nil {
		h.Log.Error("patch request failed",
			zap.String("id", id.Hex()),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update request")
		return
	}
	httpjson.Respond(w, http.StatusOK, res)
}
