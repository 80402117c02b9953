package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gridironlab/gridstats/internal/api/respond"
	"github.com/gridironlab/gridstats/internal/config"
	"github.com/gridironlab/gridstats/internal/normalize"
	"github.com/gridironlab/gridstats/internal/rank"
	"github.com/gridironlab/gridstats/internal/schema"
	"github.com/gridironlab/gridstats/internal/scrape"
)

// statsResponse is the canonical-record payload for stats endpoints.
type statsResponse struct {
	Stat       string             `json:"stat"`
	Role       string             `json:"role"`
	Season     int                `json:"season"`
	SeasonType string             `json:"season_type"`
	Count      int                `json:"count"`
	Records    []normalize.Record `json:"records"`
	Skipped    []string           `json:"skipped_rows,omitempty"`
}

// GetTeamStats scrapes and normalizes one statistics table.
// @Summary Get normalized team stats
// @Description Fetches the requested category's table from the upstream stats source and returns canonical typed records. Rows with malformed cells are dropped and reported in skipped_rows.
// @Tags stats
// @Produce json
// @Param category path string true "Stat category" Enums(game-stats, scoring, passing, rushing, receiving, offensive-line)
// @Param role query string false "Role perspective" Enums(offense, defense) default(offense)
// @Param season query int false "Season year (defaults to latest)"
// @Param season_type query string false "Season type" Enums(Regular, Playoffs) default(Regular)
// @Success 200 {object} handler.statsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Failure 422 {object} respond.ErrorResponse
// @Router /stats/{category} [get]
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	res, ok := h.fetchAndNormalize(w, r, req)
	if !ok {
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, statsResponse{
		Stat:       string(req.Category),
		Role:       string(req.Role),
		Season:     req.Season,
		SeasonType: string(req.SeasonType),
		Count:      len(res.Records),
		Records:    res.Records,
		Skipped:    res.SkippedMessages(),
	})
}

// GetTeamStatsSummary returns a league distribution summary and leaders
// for one canonical column.
// @Summary Summarize one stat column
// @Description Scrapes and normalizes the category, then returns min/max/mean/median and top teams for the named canonical column.
// @Tags stats
// @Produce json
// @Param category path string true "Stat category" Enums(game-stats, scoring, passing, rushing, receiving, offensive-line)
// @Param column query string true "Canonical column name, e.g. rush_yds"
// @Param top query int false "Leader count" default(5)
// @Param role query string false "Role perspective" Enums(offense, defense) default(offense)
// @Param season query int false "Season year (defaults to latest)"
// @Param season_type query string false "Season type" Enums(Regular, Playoffs) default(Regular)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /stats/{category}/summary [get]
func (h *Handler) GetTeamStatsSummary(w http.ResponseWriter, r *http.Request) {
	column := r.URL.Query().Get("column")
	if column == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_COLUMN", "column query parameter is required")
		return
	}
	top := 5
	if t := r.URL.Query().Get("top"); t != "" {
		n, err := strconv.Atoi(t)
		if err != nil || n < 1 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_TOP", "top must be a positive integer")
			return
		}
		top = n
	}

	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	res, ok := h.fetchAndNormalize(w, r, req)
	if !ok {
		return
	}

	summary, err := rank.Summarize(res.Records, column)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_COLUMN", err.Error())
		return
	}
	leaders, err := rank.Leaders(res.Records, column, top)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_COLUMN", err.Error())
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"stat":        string(req.Category),
		"role":        string(req.Role),
		"season":      req.Season,
		"season_type": string(req.SeasonType),
		"summary":     summary,
		"leaders":     leaders,
	})
}

// --------------------------------------------------------------------------
// Request validation
// --------------------------------------------------------------------------

// parseRequest validates path and query parameters into a scrape request.
// The normalizer trusts these invariants, so everything is checked here:
// category one of the six, role offense/defense, season within the
// published range, season_type Regular or Playoffs.
func (h *Handler) parseRequest(w http.ResponseWriter, r *http.Request) (scrape.Request, bool) {
	var req scrape.Request

	category, err := schema.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_CATEGORY",
			"category must be one of: game-stats, scoring, passing, rushing, receiving, offensive-line")
		return req, false
	}

	role := schema.Offense
	switch r.URL.Query().Get("role") {
	case "", "offense":
	case "defense":
		role = schema.Defense
	default:
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ROLE", "role must be 'offense' or 'defense'")
		return req, false
	}

	season := config.MaxSeason()
	if s := r.URL.Query().Get("season"); s != "" {
		season, err = strconv.Atoi(s)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON", "season must be an integer")
			return req, false
		}
		if season < config.MinSeason || season > config.MaxSeason() {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON",
				fmt.Sprintf("season must be between %d and %d", config.MinSeason, config.MaxSeason()))
			return req, false
		}
	}

	seasonType := schema.RegularSeason
	switch r.URL.Query().Get("season_type") {
	case "", "Regular", "REG":
	case "Playoffs", "POST":
		seasonType = schema.Postseason
	default:
		respond.WriteError(w, http.StatusBadRequest, "INVALID_SEASON_TYPE",
			"season_type must be 'Regular' or 'Playoffs'")
		return req, false
	}

	return scrape.Request{
		Category:   category,
		Role:       role,
		Season:     season,
		SeasonType: seasonType,
	}, true
}

// fetchAndNormalize runs the scrape + normalize pipeline for one request,
// mapping failures to the API error taxonomy: upstream fetch problems are
// 502, structural normalization failures are 422.
func (h *Handler) fetchAndNormalize(w http.ResponseWriter, r *http.Request, req scrape.Request) (*normalize.Result, bool) {
	tbl, err := h.source.Fetch(r.Context(), req)
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusBadGateway, "UPSTREAM_FETCH_FAILED",
			"could not fetch the stats table", err.Error())
		return nil, false
	}

	res, err := normalize.Normalize(tbl, req.Category, req.Role, req.Season, req.SeasonType)
	if err != nil {
		var shape *normalize.ShapeMismatchError
		if errors.As(err, &shape) {
			respond.WriteErrorDetail(w, http.StatusUnprocessableEntity, "SHAPE_MISMATCH",
				"upstream table layout does not match the schema", err.Error())
			return nil, false
		}
		respond.WriteErrorDetail(w, http.StatusBadRequest, "NORMALIZE_FAILED",
			"could not normalize the stats table", err.Error())
		return nil, false
	}
	return res, true
}
