package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func versionHandler(t *testing.T, supported []string) http.Handler {
	t.Helper()
	return APIVersion(supported, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAPIVersionDefaultsWhenMissing(t *testing.T) {
	handler := versionHandler(t, []string{"1.0"})
	r := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-Api-Version"); got != "1.0" {
		t.Fatalf("expected negotiated version header, got %q", got)
	}
}

func TestAPIVersionAcceptsSupported(t *testing.T) {
	handler := versionHandler(t, []string{"1.0", "2.0"})
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Api-Version", "2.0")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAPIVersionRejectsUnknown(t *testing.T) {
	handler := versionHandler(t, []string{"1.0"})
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Api-Version", "9.9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
