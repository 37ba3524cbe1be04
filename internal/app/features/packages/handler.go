// internal/app/features/packages/handler.go

// Package packages serves the purchasable package catalog. The catalog
// is public so prospects can see pricing before registering.
package packages

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"assetverse/internal/app/system/httpjson"
	"assetverse/internal/app/system/timeouts"
)

// Store is the slice of the package store the handlers need.
type Store interface {
	List(ctx context.Context) ([]bson.M, error)
}

type Handler struct {
	Store Store
	Log   *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// ServePackagesList handles GET /packages.
func (h *Handler) ServePackagesList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list packages failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list packages")
		return
	}
	httpjson.Respond(w, http.StatusOK, docs)
}
