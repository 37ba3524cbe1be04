// internal/app/features/requests/routes.go
package requests

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /requests. Resolving a
// request is an HR action; filing and browsing only need a credential.
func Routes(h *Handler, requireAuth, requireHR func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(requireAuth).Post("/", h.HandleCreateRequest)
	r.With(requireAuth).Get("/", h.ServeRequestsList)
	r.With(requireAuth, requireHR).Patch("/{id}", h.HandlePatchRequest)
	return r
}
