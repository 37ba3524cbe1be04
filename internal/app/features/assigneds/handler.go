// internal/app/features/assigneds/handler.go

// Package assigneds serves the HR-to-employee assignment pairs. Pairs
// are deleted by the two emails rather than by id, so the store
// normalizes both sides before matching.
package assigneds

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"assetverse/internal/app/system/httpjson"
	"assetverse/internal/app/system/normalize"
	"assetverse/internal/app/system/timeouts"
	"assetverse/internal/domain/models"
)

// Store is the slice of the assignment store the handlers need.
type Store interface {
	Create(ctx context.Context, doc bson.M) (models.InsertResult, error)
	List(ctx context.Context) ([]bson.M, error)
	DeleteByPair(ctx context.Context, hrEmail, epEmail string) (models.DeleteResult, error)
}

type Handler struct {
	Store Store
	Log   *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// HandleCreateAssignment handles POST /assigneds.
func (h *Handler) HandleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	doc, err := httpjson.DecodeDocument(r)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := httpjson.RequireStrings(doc, "hrEmail", "epEmail"); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Store.Create(ctx, doc)
	if err != nil {
		h.Log.Error("create assignment failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create assignment")
		return
	}
	httpjson.Respond(w, http.StatusCreated, res)
}

// ServeAssignmentsList handles GET /assigneds.
func (h *Handler) ServeAssignmentsList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list assignments failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list assignments")
		return
	}
	httpjson.Respond(w, http.StatusOK, docs)
}

// HandleDeleteAssignment handles DELETE /assigneds?hrEmail=..&epEmail=..
// Both query parameters are required. Deleting a pair that does not
// exist is a no-op reported through the deleted count.
func (h *Handler) HandleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	hrEmail := normalize.Email(q.Get("hrEmail"))
	epEmail := normalize.Email(q.Get("epEmail"))
	if hrEmail == "" || epEmail == "" {
		httpjson.Error(w, http.StatusBadRequest, "hrEmail and epEmail query parameters are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Store.DeleteByPair(ctx, hrEmail, epEmail)
	if err != nil {
		h.Log.Error("delete assignment failed",
			zap.String("hrEmail", hrEmail),
			zap.String("epEmail", epEmail),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete assignment")
		return
	}
	httpjson.Respond(w, http.StatusOK, res)
}
