// internal/app/features/affiliations/routes.go
package affiliations

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /affiliations.
func Routes(h *Handler, requireAuth, requireHR func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(requireAuth, requireHR).Post("/", h.HandleCreateAffiliation)
	r.With(requireAuth).Get("/", h.ServeAffiliationsList)
	r.With(requireAuth, requireHR).Delete("/{id}", h.HandleDeleteAffiliation)
	return r
}
