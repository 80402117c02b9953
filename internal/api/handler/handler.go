// Package handler provides HTTP handlers for all API endpoints. Handlers
// validate request parameters, drive the scrape source, and hand the raw
// table to the normalizer, no storage layer in between.
package handler

import (
	"net/http"
	"time"

	"github.com/gridironlab/gridstats/internal/api/respond"
	"github.com/gridironlab/gridstats/internal/config"
	"github.com/gridironlab/gridstats/internal/scrape"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	source scrape.Source
	cfg    *config.Config
}

// New creates a Handler with shared dependencies.
func New(source scrape.Source, cfg *config.Config) *Handler {
	return &Handler{source: source, cfg: cfg}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and supported categories.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Gridiron Stats API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"categories": []string{
			"game-stats", "scoring", "passing",
			"rushing", "receiving", "offensive-line",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
