package version

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/huma-hello/internal/config"
)

// Register wires the version route into the provided API router. The reported
// values are captured from cfg once, at registration.
func Register(api huma.API, cfg config.Config, prefix string) {
	data := Info{Version: cfg.Version, Environment: cfg.Environment}

	huma.Register(api, huma.Operation{
		OperationID: "get-version",
		Method:      http.MethodGet,
		Path:        prefix + "/version",
		Summary:     "Get service version and environment",
		Tags:        []string{"Version"},
	}, func(_ context.Context, _ *struct{}) (*Output, error) {
		return &Output{Body: data}, nil
	})
}
