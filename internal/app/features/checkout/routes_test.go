package checkout_test

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"assetverse/internal/app/features/checkout"
	"assetverse/internal/testutil"
)

func TestRoutes_GateChain(t *testing.T) {
	gates := &testutil.GateLog{}
	router := checkout.Routes(
		checkout.NewHandler(&fakePayments{}, "https://assetverse.example.com", zap.NewNop()),
		gates.Gate("auth"), gates.Gate("hr"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, testutil.NewRequest("POST", "/"))

	want := []string{"auth", "hr"}
	if !reflect.DeepEqual(gates.Names, want) {
		t.Errorf("gates for POST /: got %v, want %v", gates.Names, want)
	}
}
