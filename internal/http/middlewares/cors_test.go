package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsHandler(allowed []string) http.Handler {
	return WithCORS(allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORS_WildcardReflectsWithoutCredentials(t *testing.T) {
	t.Parallel()
	h := corsHandler([]string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	req.Header.Set("Origin", "https://cualquier-cosa.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://cualquier-cosa.example" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Fatalf("wildcard match must not allow credentials, got %q", got)
	}
}

func TestCORS_ExplicitOriginAllowsCredentials(t *testing.T) {
	t.Parallel()
	h := corsHandler([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("explicit origin must allow credentials, got %q", got)
	}
}

func TestCORS_UnlistedOriginGetsNothing(t *testing.T) {
	t.Parallel()
	h := corsHandler([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unlisted origin must not be allowed, got %q", got)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	t.Parallel()
	h := corsHandler([]string{"*"})

	req := httptest.NewRequest(http.MethodOptions, "/api/credentials", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rec.Code)
	}
}
