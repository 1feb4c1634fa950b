package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func serveRequestID(t *testing.T, incoming string, set bool) (string, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if set {
		req.Header.Set(chimiddleware.RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()

	var captured string
	RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	})).ServeHTTP(rec, req)

	return captured, rec.Header().Get(chimiddleware.RequestIDHeader)
}

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	captured, header := serveRequestID(t, "", false)

	if captured == "" {
		t.Fatal("expected generated request ID")
	}
	if header != captured {
		t.Fatalf("expected response header %q, got %q", captured, header)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", captured, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDValidation(t *testing.T) {
	tests := []struct {
		name    string
		inputID string
		keep    bool
	}{
		{"alphanumeric preserved", "abc123-XYZ", true},
		{"uuid preserved", "550e8400-e29b-41d4-a716-446655440000", true},
		{"max length preserved", strings.Repeat("x", maxRequestIDLength), true},
		{"too long replaced", strings.Repeat("a", maxRequestIDLength+1), false},
		{"newline replaced", "valid\ninjected-line", false},
		{"carriage return replaced", "valid\rinjected", false},
		{"null byte replaced", "valid\x00null", false},
		{"tab replaced", "valid\ttab", false},
		{"DEL replaced", "valid\x7Fdel", false},
		{"high byte replaced", "valid\x80high", false},
		{"script tag is printable and preserved", "<script>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidRequestID(tt.inputID); got != tt.keep {
				t.Fatalf("isValidRequestID(%q) = %v, want %v", tt.inputID, got, tt.keep)
			}
		})
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	captured, header := serveRequestID(t, "external-id", true)
	if captured != "external-id" || header != "external-id" {
		t.Fatalf("expected external-id to be preserved, got context=%q header=%q", captured, header)
	}
}

func TestRequestIDUniquePerRequest(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id, _ := serveRequestID(t, "", false)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = struct{}{}
	}
}
