// Package server assembles the router, middleware stack and http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/huma-hello/internal/config"
	"github.com/janisto/huma-hello/internal/http/routes"
	applog "github.com/janisto/huma-hello/internal/platform/logging"
	appmiddleware "github.com/janisto/huma-hello/internal/platform/middleware"
	"github.com/janisto/huma-hello/internal/platform/respond"
)

const (
	title    = "Hello API"
	docsPath = "/api-docs"

	// ShutdownTimeout bounds how long in-flight requests may drain.
	ShutdownTimeout = 10 * time.Second
)

// Server serves the HTTP API on a single listener.
type Server struct {
	cfg     config.Config
	logger  *zap.Logger
	handler http.Handler
	srv     *http.Server
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the logger used for lifecycle events. Request logs still
// go through the request-scoped logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a server for cfg. Nothing is bound until Serve or ListenAndServe.
func New(cfg config.Config, opts ...Option) *Server {
	handler := NewHandler(cfg)
	s := &Server{
		cfg:     cfg,
		logger:  applog.Logger(),
		handler: handler,
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       5 * time.Second,
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    64 << 10, // 64 KB
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler returns the fully wired router for cfg.
func NewHandler(cfg config.Config) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	// Unsupported methods on known paths are indistinguishable from unknown paths.
	router.MethodNotAllowed(respond.NotFoundHandler())

	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP and X-Forwarded-For. Only deploy behind a
		// proxy that overwrites them (Cloud Run, nginx).
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(zap.String("environment", cfg.Environment)),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	api := humachi.New(router, humaConfig(cfg))

	// Add CBOR content type to OpenAPI responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(router, api, cfg)
	return router
}

func humaConfig(cfg config.Config) huma.Config {
	hcfg := huma.DefaultConfig(title, cfg.Version)
	// No $schema field in bodies and no describedby Link header.
	hcfg.CreateHooks = nil
	if cfg.DocsEnabled {
		hcfg.DocsPath = docsPath
	} else {
		hcfg.OpenAPIPath = ""
		hcfg.DocsPath = ""
		hcfg.SchemasPath = ""
	}
	return hcfg
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// ListenAndServe binds the configured port and serves until Shutdown.
// A bind failure is returned immediately.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown. It returns nil after a
// graceful shutdown.
func (s *Server) Serve(ln net.Listener) error {
	addr := ln.Addr().String()
	s.logger.Info("server listening",
		zap.String("addr", addr),
		zap.Int("port", listenerPort(ln, s.cfg.Port)),
		zap.String("environment", s.cfg.Environment),
	)
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve on %s: %w", addr, err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func listenerPort(ln net.Listener, fallback int) int {
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	_, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		return fallback
	}
	if p, err := strconv.Atoi(port); err == nil {
		return p
	}
	return fallback
}
