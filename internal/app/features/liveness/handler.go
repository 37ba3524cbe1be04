// internal/app/features/liveness/handler.go

// Package liveness serves the root banner used by uptime probes.
package liveness

import "net/http"

// Serve handles GET /.
func Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("AssetVerse Server Running!"))
}
