// Command api is the Gridiron Stats API server.
//
// Usage:
//
//	gridstats-api
//	API_PORT=8080 gridstats-api

// @title Gridiron Stats API
// @version 1.0.0
// @description Scrapes public team-statistics tables and serves them as canonical typed records.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/gridironlab/gridstats/internal/api"
	"github.com/gridironlab/gridstats/internal/config"
	"github.com/gridironlab/gridstats/internal/scrape"

	_ "github.com/gridironlab/gridstats/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Upstream source: HTML stats pages by default, JSON feed when a
	// feed base URL is configured.
	client := scrape.NewClient(scrape.ClientOptions{
		UserAgent:         cfg.UserAgent,
		Timeout:           cfg.RequestTimeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
		MaxRetries:        cfg.MaxRetries,
	}, logger)

	var source scrape.Source
	if cfg.FeedBaseURL != "" {
		source = scrape.NewFeedSource(client, cfg.FeedBaseURL, logger)
		logger.Info("Using JSON feed source", "base_url", cfg.FeedBaseURL)
	} else {
		source = scrape.NewSiteSource(client, cfg.StatsBaseURL, logger)
		logger.Info("Using HTML site source", "base_url", cfg.StatsBaseURL)
	}

	// Create router
	router := api.NewRouter(source, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Gridiron Stats API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
