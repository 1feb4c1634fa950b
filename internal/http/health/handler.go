package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/janisto/huma-hello/internal/platform/timeutil"
)

// StatusHealthy is the only status the endpoint reports.
const StatusHealthy = "healthy"

// Response is the payload for the health endpoint.
type Response struct {
	Status    string        `json:"status"`
	Timestamp timeutil.Time `json:"timestamp"`
}

// Handler is a plain HTTP handler for the health check endpoint. It is kept
// outside the Huma API so probes never depend on content negotiation.
func Handler(w http.ResponseWriter, r *http.Request) {
	NewHandler(time.Now).ServeHTTP(w, r)
}

// NewHandler returns a health handler that stamps each response with now().
func NewHandler(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Response{
			Status:    StatusHealthy,
			Timestamp: timeutil.NewTime(now()),
		})
	}
}
