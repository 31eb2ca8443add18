package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doTryCatch/blog-content-management-demo/internal/bootstrap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := bootstrap.InitLogger(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logCloser.Close(); cerr != nil {
			fmt.Fprintln(os.Stderr, "close log file:", cerr)
		}
	}()

	logStartupInfo(logger, cfg.API.BaseURL, cfg.IsDev)

	app, err := bootstrap.BuildApp(cfg, logger)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func logStartupInfo(logger *slog.Logger, baseURL string, isDev bool) {
	logger.InfoContext(context.Background(), "starting blog dashboard",
		"api_base_url", baseURL,
		"dev", isDev,
	)
}
