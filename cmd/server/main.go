package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/janisto/huma-hello/internal/config"
	applog "github.com/janisto/huma-hello/internal/platform/logging"
	"github.com/janisto/huma-hello/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = config.DefaultVersion

func main() {
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		exit(fmt.Errorf("load config: %w", err))
	}
	cfg.Version = Version

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	if err := run(server.New(cfg), stop); err != nil {
		exit(err)
	}
	if err := applog.Sync(); err != nil {
		applog.LogError(context.Background(), "logger sync error", err)
	}
}

// run serves until a signal arrives on stop, then shuts down gracefully.
// A bind failure is returned without retrying.
func run(srv *server.Server, stop <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("listen failed: %w", err)
		}
		return nil
	case sig := <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-listenErr; err != nil {
		return err
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}

func exit(err error) {
	applog.LogError(context.Background(), "fatal", err)
	_ = applog.Sync()
	os.Exit(1)
}
