// Package routes wires the service's three endpoints into the router.
package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/huma-hello/internal/config"
	"github.com/janisto/huma-hello/internal/http/greeting"
	"github.com/janisto/huma-hello/internal/http/health"
	"github.com/janisto/huma-hello/internal/http/v1/version"
)

// APIPrefix is the path prefix for versioned API operations.
const APIPrefix = "/api"

// Register wires all HTTP routes. The health probe is mounted directly on the
// router; the others go through the Huma API.
func Register(router chi.Router, api huma.API, cfg config.Config) {
	router.Get("/health", health.Handler)

	greeting.Register(api)
	version.Register(api, cfg, APIPrefix)
}
