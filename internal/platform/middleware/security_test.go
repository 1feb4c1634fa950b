package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityMiddlewareSetsHeaders(t *testing.T) {
	h := Security()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, kv := range securityHeaders {
		if got := resp.Header().Get(kv[0]); got != kv[1] {
			t.Errorf("%s: expected %q, got %q", kv[0], kv[1], got)
		}
	}
	if got := resp.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff, got %q", got)
	}
}

func TestSecurityMiddlewareStripsFingerprintHeaders(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Security()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(w, r)
	})

	resp := httptest.NewRecorder()
	resp.Header().Set("X-Powered-By", "Express")
	resp.Header().Set("Server", "framework/1.0")
	upstream.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, name := range fingerprintHeaders {
		if got := resp.Header().Get(name); got != "" {
			t.Errorf("expected %s to be removed, got %q", name, got)
		}
	}
}

func TestSecurityMiddlewarePreservesDownstreamResponse(t *testing.T) {
	h := Security()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "max-age=60")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("test body"))
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", nil))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if resp.Body.String() != "test body" {
		t.Fatal("expected body to be preserved")
	}
	if got := resp.Header().Get("Cache-Control"); got != "max-age=60" {
		t.Errorf("expected downstream Cache-Control to win, got %q", got)
	}
}

func TestSecurityMiddlewareSkipsExcludedPaths(t *testing.T) {
	h := Security("/api-docs")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		path        string
		wantHeaders bool
	}{
		{"/api-docs", false},
		{"/api-docs/index.html", false},
		{"/api/version", true},
		{"/health", true},
		{"/", true},
	}

	for _, tt := range tests {
		resp := httptest.NewRecorder()
		h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tt.path, nil))

		hasHeaders := resp.Header().Get("X-Content-Type-Options") == "nosniff"
		if hasHeaders != tt.wantHeaders {
			t.Errorf("%s: expected headers=%v, got headers=%v", tt.path, tt.wantHeaders, hasHeaders)
		}
	}
}
