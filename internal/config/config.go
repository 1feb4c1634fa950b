// Package config loads the immutable process configuration. It is read once
// at startup and passed explicitly to the server and route registration.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	applog "github.com/janisto/huma-hello/internal/platform/logging"
)

// Environment variable names.
const (
	EnvPort        = "PORT"
	EnvEnvironment = "APP_ENV"
	EnvDocs        = "API_DOCS"
)

// Defaults applied when a variable is unset.
const (
	DefaultPort        = 3000
	DefaultEnvironment = Development
	DefaultVersion     = "1.0.0"
)

// Deployment environments.
const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
	Test        = "test"
)

// ErrInvalidEnvironment is returned when APP_ENV names an unknown environment.
var ErrInvalidEnvironment = errors.New("invalid environment")

// Config is the process-wide configuration. Treat values as read-only.
type Config struct {
	// Port is the TCP port the listener binds.
	Port int
	// Environment is one of Development, Staging, Production or Test.
	Environment string
	// Version is the semantic version reported by GET /api/version.
	Version string
	// DocsEnabled exposes the OpenAPI document and the docs UI.
	DocsEnabled bool
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Port:        DefaultPort,
		Environment: DefaultEnvironment,
		Version:     DefaultVersion,
	}
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads an optional .env file from the working directory and then builds
// a Config from the process environment. Variables already set in the
// environment take precedence over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to resolve variables.
//
// An absent or invalid PORT falls back to DefaultPort with a warning. An
// unknown APP_ENV is an error. API_DOCS accepts any strconv.ParseBool value.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if raw, ok := lookup(EnvPort); ok && strings.TrimSpace(raw) != "" {
		port, err := parsePort(raw)
		if err != nil {
			applog.LogWarn(context.Background(), "invalid PORT, using default",
				zap.String("value", raw),
				zap.Int("port", DefaultPort),
				zap.Error(err),
			)
		} else {
			cfg.Port = port
		}
	}

	if raw, ok := lookup(EnvEnvironment); ok && strings.TrimSpace(raw) != "" {
		env, err := ParseEnvironment(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.Environment = env
	}

	if raw, ok := lookup(EnvDocs); ok && strings.TrimSpace(raw) != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvDocs, err)
		}
		cfg.DocsEnabled = enabled
	}

	return cfg, nil
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", EnvPort, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("%s %d out of range 1-65535", EnvPort, port)
	}
	return port, nil
}

// ParseEnvironment normalises s and checks it names a known environment.
func ParseEnvironment(s string) (string, error) {
	env := strings.ToLower(strings.TrimSpace(s))
	switch env {
	case Development, Staging, Production, Test:
		return env, nil
	default:
		return "", fmt.Errorf("%w: %q (want development, staging, production or test)", ErrInvalidEnvironment, s)
	}
}
