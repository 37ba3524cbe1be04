// internal/app/features/packages/routes.go
package packages

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /packages.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePackagesList)
	return r
}
