package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rewardplus/loyalty-console/internal/access"
	"github.com/rewardplus/loyalty-console/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestRoleContextResolvesCapabilities(t *testing.T) {
	var seen access.Set
	handler := RoleContext(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CapabilitiesFromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Console-Role", "manager")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if seen.Role() != access.RoleManager {
		t.Fatalf("role = %q", seen.Role())
	}
	if !seen.Allows(access.CapViewAnalytics) {
		t.Fatal("manager should view analytics")
	}
}

func TestRoleContextRejectsUnknownRole(t *testing.T) {
	handler := RoleContext(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Console-Role", "root")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRequireCapabilityGatesRoute(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RoleContext(testLogger())(RequireCapability(access.CapManagePromotions, testLogger())(next))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Console-Role", "CUSTOMER")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("customer status = %d", rec.Code)
	}

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Console-Role", "MARKETING")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("marketing status = %d", rec.Code)
	}
}
