// internal/app/features/checkout/routes.go
package checkout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /create-checkout-session.
func Routes(h *Handler, requireAuth, requireHR func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(requireAuth, requireHR).Post("/", h.HandleCreateSession)
	return r
}
