// internal/app/features/users/routes.go
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter mounted under /users. Registration is
// open; the listing requires a credential.
func Routes(h *Handler, requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreateUser)
	r.With(requireAuth).Get("/", h.ServeUsersList)
	return r
}

// LimitRoutes returns the subrouter mounted under /hr-limit.
func LimitRoutes(h *Handler, requireAuth, requireHR func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(requireAuth, requireHR).Patch("/{email}", h.HandleUpdateLimit)
	return r
}
