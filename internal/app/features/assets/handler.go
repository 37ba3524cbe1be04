// internal/app/features/assets/handler.go

// Package assets serves the asset inventory. HR creates assets; any
// authenticated user can browse, optionally paging and filtering the
// listing down to their own documents.
package assets

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	assetstore "assetverse/internal/app/store/assets"
	"assetverse/internal/app/system/auth"
	"assetverse/internal/app/system/httpjson"
	"assetverse/internal/app/system/normalize"
	"assetverse/internal/app/system/paging"
	"assetverse/internal/app/system/timeouts"
	"assetverse/internal/domain/models"
)

// Store is the slice of the asset store the handlers need.
type Store interface {
	Create(ctx context.Context, doc bson.M) (models.InsertResult, error)
	List(ctx context.Context, f assetstore.ListFilter) ([]bson.M, int64, error)
}

type Handler struct {
	Store Store
	Log   *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// HandleCreateAsset handles POST /assets.
func (h *Handler) HandleCreateAsset(w http.ResponseWriter, r *http.Request) {
	doc, err := httpjson.DecodeDocument(r)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := httpjson.RequireStrings(doc, "name"); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Store.Create(ctx, doc)
	if err != nil {
		h.Log.Error("create asset failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create asset")
		return
	}
	httpjson.Respond(w, http.StatusCreated, res)
}

// listResponse pairs the page with the total count matching the same
// filter so clients can page without a second request.
type listResponse struct {
	Result []bson.M `json:"result"`
	Count  int64    `json:"count"`
}

// ServeAssetsList handles GET /assets with optional limit, skip and
// email query parameters. An email filter must name the caller; browsing
// another user's documents is rejected.
func (h *Handler) ServeAssetsList(w http.ResponseWriter, r *http.Request) {
	page, err := paging.Parse(r)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	email := normalize.Email(r.URL.Query().Get("email"))
	if email != "" {
		principal, ok := auth.PrincipalFrom(r.Context())
		if !ok || principal.Email != email {
			httpjson.Error(w, http.StatusUnauthorized, "email filter does not match the authenticated user")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, count, err := h.Store.List(ctx, assetstore.ListFilter{
		Email: email,
		Page:  page,
	})
	if err != nil {
		h.Log.Error("list assets failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list assets")
		return
	}
	httpjson.Respond(w, http.StatusOK, listResponse{Result: docs, Count: count})
}
