// Command app serves the HerbRun HTTP API.
//
//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/HerbRun_Go/internal/bootstrap"
	"github.com/osse101/HerbRun_Go/internal/config"
	"github.com/osse101/HerbRun_Go/internal/server"
)

// @title HerbRun API
// @version 1.0
// @description Expected yield, XP and profit of Old School RuneScape herb runs.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	bootstrap.SetupLogger(cfg, os.Stdout)

	warnings, err := config.ValidateEnvWithWarnings(config.RequiredServerEnvVars)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := bootstrap.InitializeServices(ctx, cfg)
	if err != nil {
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, services.Server)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Pool: services.Pool})
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Pool:   services.Pool,
	})
	return nil
}
