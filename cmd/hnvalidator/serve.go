package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ishaan-vashist/YC-News-validator/internal/adapter/chromedp_renderer"
	"github.com/ishaan-vashist/YC-News-validator/internal/delivery/http/handler"
	"github.com/ishaan-vashist/YC-News-validator/internal/delivery/http/router"
	"github.com/ishaan-vashist/YC-News-validator/internal/usecase"
	"github.com/ishaan-vashist/YC-News-validator/pkg/config"
	"github.com/ishaan-vashist/YC-News-validator/pkg/logger"
	"github.com/ishaan-vashist/YC-News-validator/pkg/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the validation API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	logger.Init(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	slog.Info("Logger initialized", "level", cfg.LogLevel)

	metrics.Init()
	slog.Info("Metrics initialized")

	renderer := chromedp_renderer.New(cfg.Headless, cfg.PageLoadTimeout)
	defer renderer.Close()

	coordinator := usecase.NewCoordinator(
		renderer,
		usecase.NewWalker(usecase.NewExtractor()),
		usecase.NewValidator(),
		cfg.SourceURL,
	)

	apiHandler := handler.NewHandler(coordinator, cfg.TargetArticles)
	httpRouter := router.New(apiHandler)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: httpRouter,
		// The scrape endpoint responds only after the full run completes,
		// so the write timeout must cover an entire multi-page scrape.
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.ServerPort, "source", cfg.SourceURL)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not listen on port %s: %w", cfg.ServerPort, err)
	}
	return nil
}
