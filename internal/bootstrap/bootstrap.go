// Package bootstrap wires configuration, logging and the application
// dependency graph for the entrypoint.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/doTryCatch/blog-content-management-demo/config"
	"github.com/doTryCatch/blog-content-management-demo/internal/gateway"
	"github.com/doTryCatch/blog-content-management-demo/internal/guard"
	"github.com/doTryCatch/blog-content-management-demo/internal/notify"
	"github.com/doTryCatch/blog-content-management-demo/internal/session"
	"github.com/doTryCatch/blog-content-management-demo/internal/tui"
)

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// InitLogger initializes the structured logger. The terminal belongs to the
// renderer, so logs go to the configured file; the returned closer flushes
// it on shutdown.
func InitLogger(cfg config.AppConfig) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if cfg.IsDev {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, f, nil
}

// BuildApp assembles the dependency graph and returns the root program
// model.
func BuildApp(cfg config.AppConfig, logger *slog.Logger) (*tui.App, error) {
	gw, err := gateway.New(gateway.Options{
		BaseURL:          cfg.API.BaseURL,
		PathPrefix:       cfg.API.PathPrefix,
		Timeout:          cfg.API.Timeout,
		CredentialCookie: cfg.API.CredentialCookie,
		Logger:           logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build gateway: %w", err)
	}

	sess := session.New(session.Options{
		API:             gw.Auth(),
		ProtectedPrefix: cfg.Routes.ProtectedPrefix,
		Logger:          logger,
	})

	g := guard.New(guard.Options{
		PublicPaths: cfg.Routes.PublicPaths,
		APIPrefix:   cfg.API.PathPrefix,
		LoginPath:   cfg.Routes.LoginPath,
	})

	toasts := notify.NewCenter(notify.CenterOptions{})

	return tui.New(tui.Options{
		Config:  cfg,
		Gateway: gw,
		Session: sess,
		Guard:   g,
		Toasts:  toasts,
		Logger:  logger,
	}), nil
}
