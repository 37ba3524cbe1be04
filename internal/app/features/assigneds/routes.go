// internal/app/features/assigneds/routes.go
package assigneds

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /assigneds.
func Routes(h *Handler, requireAuth, requireHR func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(requireAuth, requireHR).Post("/", h.HandleCreateAssignment)
	r.With(requireAuth).Get("/", h.ServeAssignmentsList)
	r.With(requireAuth, requireHR).Delete("/", h.HandleDeleteAssignment)
	return r
}
