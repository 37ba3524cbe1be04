// internal/app/features/users/handler.go

// Package users serves the user directory: open registration, an
// authenticated listing, and the HR-gated employee limit update.
package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	userstore "assetverse/internal/app/store/users"
	"assetverse/internal/app/system/httpjson"
	"assetverse/internal/app/system/timeouts"
	"assetverse/internal/domain/models"
)

// Store is the slice of the user store the handlers need.
type Store interface {
	Create(ctx context.Context, doc bson.M) (models.InsertResult, error)
	List(ctx context.Context) ([]bson.M, error)
	UpdatePackageLimit(ctx context.Context, email string, limit int) (models.UpdateResult, error)
}

type Handler struct {
	Store Store
	Log   *zap.Logger
}

func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// HandleCreateUser handles POST /users. Registration is open so new
// accounts can exist before they hold a credential.
func (h *Handler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	doc, err := httpjson.DecodeDocument(r)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := httpjson.RequireStrings(doc, "email"); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Store.Create(ctx, doc)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.Log.Error("create user failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create user")
		return
	}
	httpjson.Respond(w, http.StatusCreated, res)
}

// ServeUsersList handles GET /users.
func (h *Handler) ServeUsersList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list users failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list users")
		return
	}
	httpjson.Respond(w, http.StatusOK, docs)
}

type limitUpdate struct {
	EmployeeLimit *int `json:"employeeLimit"`
}

// HandleUpdateLimit handles PATCH /hr-limit/{email}. Only the package
// limit field is writable through this route.
func (h *Handler) HandleUpdateLimit(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var upd limitUpdate
	if err := httpjson.Decode(r, &upd); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if upd.EmployeeLimit == nil {
		httpjson.Error(w, http.StatusBadRequest, `missing required field "employeeLimit"`)
		return
	}
	if *upd.EmployeeLimit < 0 {
		httpjson.Error(w, http.StatusBadRequest, "employeeLimit must be a non-negative integer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Store.UpdatePackageLimit(ctx, email, *upd.EmployeeLimit)
	if err != nil {
		h.Log.Error("update package limit failed",
			zap.String("email", email),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update limit")
		return
	}
	httpjson.Respond(w, http.StatusOK, res)
}
