// internal/app/features/affiliations/handler.go

// Package affiliations serves affiliation requests linking an HR account
// to an employee account.
package affiliations

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

// Store is the slice of the affiliation store the handlers need.
type Store interface {
	Create(ctx context.Context, doc bson.M) (models.InsertResult, error)
	List(ctx context.Context) ([]bson.M, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

type Handler struct {
	Store Store
	Log   *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// HandleCreateAffiliation handles POST /affiliations.
func (h *Handler) HandleCreateAffiliation(w http.ResponseWriter, r *http.Request) {
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
		h.Log.Error("create affiliation failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create affiliation")
		return
	}
	httpjson.Respond(w, http.StatusCreated, res)
}

// ServeAffiliationsList handles GET /affiliations.
func (h *Handler) ServeAffiliationsList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list affiliations failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list affiliations")
		return
	}
	httpjson.Respond(w, http.StatusOK, docs)
}

// HandleDeleteAffiliation handles DELETE /affiliations/{id}. Deleting an
// absent affiliation is a no-op reported through the deleted count.
func (h *Handler) HandleDeleteAffiliation(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "malformed affiliation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Store.DeleteByID(ctx, id)
	if err != nil {
		h.Log.Error("delete affiliation failed",
			zap.String("id", id.Hex()),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete affiliation")
		return
	}
	httpjson.Respond(w, http.StatusOK, res)
}
