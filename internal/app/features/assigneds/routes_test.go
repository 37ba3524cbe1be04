package assigneds_test

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"assetverse/internal/app/features/assigneds"
	"assetverse/internal/testutil"
)

func TestRoutes_GateChain(t *testing.T) {
	gates := &testutil.GateLog{}
	router := assigneds.Routes(assigneds.NewHandler(&fakeStore{}, zap.NewNop()),
		gates.Gate("auth"), gates.Gate("hr"))

	tests := []struct {
		name   string
		method string
		target string
		want   []string
	}{
		{"create needs auth and hr", "POST", "/", []string{"auth", "hr"}},
		{"list needs auth only", "GET", "/", []string{"auth"}},
		{"delete needs auth and hr", "DELETE", "/", []string{"auth", "hr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gates.Reset()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, testutil.NewRequest(tt.method, tt.target))
			if !reflect.DeepEqual(gates.Names, tt.want) {
				t.Errorf("gates for %s %s: got %v, want %v", tt.method, tt.target, gates.Names, tt.want)
			}
		})
	}
}
