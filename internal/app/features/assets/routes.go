// internal/app/features/assets/routes.go
package assets

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /assets.
func Routes(h *Handler, requireAuth, requireHR func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(requireAuth, requireHR).Post("/", h.HandleCreateAsset)
	r.With(requireAuth).Get("/", h.ServeAssetsList)
	return r
}
