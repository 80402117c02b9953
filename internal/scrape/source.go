package scrape

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/gridironlab/gridstats/internal/schema"
	"github.com/gridironlab/gridstats/internal/table"
)

// Request names one statistics table to fetch.
type Request struct {
	Category   schema.Category
	Role       schema.Role
	Season     int
	SeasonType schema.SeasonType
}

func (r Request) String() string {
	return fmt.Sprintf("%s/%s %d %s", r.Category, r.Role, r.Season, r.SeasonType)
}

// Source fetches the raw table for a request. SiteSource scrapes the
// HTML stats pages; FeedSource reads the JSON feed. Both yield the same
// generic table, so the normalizer never knows which one ran.
type Source interface {
	Fetch(ctx context.Context, req Request) (*table.Table, error)
}

// seasonTypeSlugs maps the canonical season type to the path segment the
// stats site uses.
var seasonTypeSlugs = map[schema.SeasonType]string{
	schema.RegularSeason: "reg",
	schema.Postseason:    "post",
}

// --------------------------------------------------------------------------
// HTML stats pages
// --------------------------------------------------------------------------

// SiteSource scrapes the public team-stats pages.
type SiteSource struct {
	client  *Client
	baseURL string
	logger  *slog.Logger
}

// NewSiteSource creates a source for the HTML stats pages rooted at
// baseURL (no trailing slash).
func NewSiteSource(client *Client, baseURL string, logger *slog.Logger) *SiteSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &SiteSource{client: client, baseURL: baseURL, logger: logger}
}

// PageURL builds the stats-page URL for a request, e.g.
// {base}/team-stats/offense/rushing/2024/reg/all.
func (s *SiteSource) PageURL(req Request) string {
	return fmt.Sprintf("%s/team-stats/%s/%s/%d/%s/all",
		s.baseURL, req.Role, schema.Slug(req.Category), req.Season, seasonTypeSlugs[req.SeasonType])
}

// Fetch downloads and parses the stats page for a request.
func (s *SiteSource) Fetch(ctx context.Context, req Request) (*table.Table, error) {
	u := s.PageURL(req)
	s.logger.Info("fetching stats page", "url", u, "request", req.String())

	body, err := s.client.Get(ctx, u, "text/html")
	if err != nil {
		return nil, err
	}

	tbl, err := table.ParseHTML(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse stats page %s: %w", u, err)
	}
	s.logger.Info("parsed stats page", "rows", tbl.NumRows(), "cols", tbl.NumCols())
	return tbl, nil
}

// --------------------------------------------------------------------------
// JSON feed
// --------------------------------------------------------------------------

// FeedSource reads the JSON statistics feed.
type FeedSource struct {
	client  *Client
	baseURL string
	logger  *slog.Logger
}

// NewFeedSource creates a source for the JSON feed rooted at baseURL.
func NewFeedSource(client *Client, baseURL string, logger *slog.Logger) *FeedSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedSource{client: client, baseURL: baseURL, logger: logger}
}

// FeedURL builds the feed endpoint for a request.
func (s *FeedSource) FeedURL(req Request) string {
	params := url.Values{
		"category":    {schema.Slug(req.Category)},
		"role":        {string(req.Role)},
		"season":      {strconv.Itoa(req.Season)},
		"season_type": {seasonTypeSlugs[req.SeasonType]},
	}
	return s.baseURL + "/v1/team-stats?" + params.Encode()
}

// Fetch downloads and parses the feed payload for a request.
func (s *FeedSource) Fetch(ctx context.Context, req Request) (*table.Table, error) {
	u := s.FeedURL(req)
	s.logger.Info("fetching stats feed", "url", u, "request", req.String())

	body, err := s.client.Get(ctx, u, "application/json")
	if err != nil {
		return nil, err
	}

	tbl, err := table.ParseJSON(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed payload: %w", err)
	}
	return tbl, nil
}
