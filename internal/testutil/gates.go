package testutil

import "net/http"

// GateLog records the order in which route gates run so tests can pin
// which gates guard which routes. Gates built from it pass the request
// through, leaving handler behavior to the handler tests.
type GateLog struct {
	Names []string
}

// Gate returns pass-through middleware that records name on each request.
func (g *GateLog) Gate(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g.Names = append(g.Names, name)
			next.ServeHTTP(w, r)
		})
	}
}

// Reset clears the recorded names between table cases.
func (g *GateLog) Reset() {
	g.Names = nil
}
