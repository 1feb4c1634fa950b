// Package respond renders the service's non-success responses as RFC 9457
// problem details, in JSON by default or CBOR when the client prefers it.
package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/huma-hello/internal/platform/logging"
)

const (
	msgNotFound          = "resource not found"
	msgInternalServerErr = "internal server error"

	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"
)

// NotFoundHandler emits a 404 problem response. It is installed both as the
// router's not-found and method-not-allowed handler, so every unmatched
// method or path gets the same body and no Allow header.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applog.LogWarn(r.Context(), msgNotFound,
			zap.Int("status", http.StatusNotFound),
			zap.String("method", r.Method),
		)
		writeProblem(w, r, http.StatusNotFound, msgNotFound)
	}
}

// Recoverer converts panics into 500 problem responses. The panic value and
// stack are logged; the client only sees a generic detail.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				applog.LogError(r.Context(), msgInternalServerErr, panicError(rec),
					zap.Int("status", http.StatusInternalServerError),
					zap.ByteString("stack", debug.Stack()),
				)
				if rw.wroteHeader {
					return
				}
				writeProblem(rw, r, http.StatusInternalServerError, msgInternalServerErr)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rec)
}

// writeProblem encodes a huma.ErrorModel. The body carries only title, status
// and detail; request data is never echoed.
func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	problem := huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	ensureVary(w.Header(), "Origin", "Accept")

	var (
		body        []byte
		err         error
		contentType = contentTypeProblemJSON
	)
	if selectFormat(r.Header.Get("Accept")) {
		contentType = contentTypeProblemCBOR
		body, err = cbor.Marshal(problem)
	} else {
		body, err = marshalJSON(problem)
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode problem", err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ensureVary adds values to the Vary header unless already present.
func ensureVary(h http.Header, values ...string) {
	present := make(map[string]struct{})
	for _, v := range h.Values("Vary") {
		for part := range strings.SplitSeq(v, ",") {
			present[strings.ToLower(strings.TrimSpace(part))] = struct{}{}
		}
	}
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := present[key]; ok {
			continue
		}
		present[key] = struct{}{}
		h.Add("Vary", v)
	}
}

// responseWriter records whether the header was written so Recoverer does
// not append a problem body to a partially written response.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
