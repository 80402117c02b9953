// Command scrape is the Gridiron Stats scraping CLI.
//
// Usage:
//
//	gridstats-scrape fetch --stat rushing --role offense --season 2024 --out rushing.csv
//	gridstats-scrape fetch --stat game-stats --season-type Playoffs --format json
//	gridstats-scrape all --season 2024 --workers 2 --out-dir ./out
//	gridstats-scrape summary --stat passing --column pass_yds --season 2024
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gridironlab/gridstats/internal/config"
	"github.com/gridironlab/gridstats/internal/export"
	"github.com/gridironlab/gridstats/internal/normalize"
	"github.com/gridironlab/gridstats/internal/pipeline"
	"github.com/gridironlab/gridstats/internal/rank"
	"github.com/gridironlab/gridstats/internal/schema"
	"github.com/gridironlab/gridstats/internal/scrape"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "gridstats-scrape",
		Short: "Gridiron team-statistics scraping CLI",
	}

	root.AddCommand(fetchCmd())
	root.AddCommand(allCmd())
	root.AddCommand(summaryCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// fetch command
// --------------------------------------------------------------------------

func fetchCmd() *cobra.Command {
	var (
		stat       string
		role       string
		season     int
		seasonType string
		out        string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch and normalize one statistics table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, src scrape.Source) error {
				req, err := buildRequest(stat, role, season, seasonType)
				if err != nil {
					return err
				}

				start := time.Now()
				res, err := fetchAndNormalize(ctx, src, req)
				if err != nil {
					return err
				}
				logger.Info("fetch finished",
					"request", req.String(),
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", res.Summary())
				for _, msg := range res.SkippedMessages() {
					logger.Warn("row skipped", "error", msg)
				}

				return writeRecords(res.Records, req, out, format)
			})
		},
	}
	cmd.Flags().StringVar(&stat, "stat", "", "Stat category (game-stats, scoring, passing, rushing, receiving, offensive-line)")
	cmd.Flags().StringVar(&role, "role", "offense", "Role (offense, defense)")
	cmd.Flags().IntVar(&season, "season", config.MaxSeason(), "Season year")
	cmd.Flags().StringVar(&seasonType, "season-type", "Regular", "Season type (Regular, Playoffs)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format (csv, json)")
	_ = cmd.MarkFlagRequired("stat")
	return cmd
}

// --------------------------------------------------------------------------
// all command
// --------------------------------------------------------------------------

func allCmd() *cobra.Command {
	var (
		season     int
		seasonType string
		workers    int
		outDir     string
	)
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Fetch every category and role for a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, src scrape.Source) error {
				st, err := parseSeasonType(seasonType)
				if err != nil {
					return err
				}
				if err := validateSeason(season); err != nil {
					return err
				}

				result := pipeline.Run(ctx, src, pipeline.Options{
					Season:     season,
					SeasonType: st,
					Workers:    workers,
					OutDir:     outDir,
				}, logger)

				for _, e := range result.Errors {
					logger.Error("batch error", "error", e)
				}
				if result.Failed > 0 {
					return fmt.Errorf("%d of %d requests failed", result.Failed, result.Requested)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", config.MaxSeason(), "Season year")
	cmd.Flags().StringVar(&seasonType, "season-type", "Regular", "Season type (Regular, Playoffs)")
	cmd.Flags().IntVar(&workers, "workers", 2, "Concurrent worker count")
	cmd.Flags().StringVar(&outDir, "out-dir", "out", "Directory for CSV output")
	return cmd
}

// --------------------------------------------------------------------------
// summary command
// --------------------------------------------------------------------------

func summaryCmd() *cobra.Command {
	var (
		stat       string
		role       string
		season     int
		seasonType string
		column     string
		top        int
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a league summary and leaders for one column",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, src scrape.Source) error {
				req, err := buildRequest(stat, role, season, seasonType)
				if err != nil {
					return err
				}

				res, err := fetchAndNormalize(ctx, src, req)
				if err != nil {
					return err
				}

				summary, err := rank.Summarize(res.Records, column)
				if err != nil {
					return err
				}
				leaders, err := rank.Leaders(res.Records, column, top)
				if err != nil {
					return err
				}

				fmt.Printf("%s %s %d %s %s\n", req.Category, req.Role, req.Season, req.SeasonType, column)
				fmt.Printf("teams=%d min=%.2f max=%.2f mean=%.2f median=%.2f\n",
					summary.Teams, summary.Min, summary.Max, summary.Mean, summary.Median)
				for i, l := range leaders {
					fmt.Printf("%2d. %-30s %.2f\n", i+1, l.Team, l.Value)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&stat, "stat", "", "Stat category")
	cmd.Flags().StringVar(&role, "role", "offense", "Role (offense, defense)")
	cmd.Flags().IntVar(&season, "season", config.MaxSeason(), "Season year")
	cmd.Flags().StringVar(&seasonType, "season-type", "Regular", "Season type (Regular, Playoffs)")
	cmd.Flags().StringVar(&column, "column", "", "Canonical column name, e.g. rush_yds")
	cmd.Flags().IntVar(&top, "top", 5, "Leader count")
	_ = cmd.MarkFlagRequired("stat")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup & helpers
// --------------------------------------------------------------------------

// run handles config loading, source construction, and context cancellation.
func run(fn func(ctx context.Context, cfg *config.Config, src scrape.Source) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := scrape.NewClient(scrape.ClientOptions{
		UserAgent:         cfg.UserAgent,
		Timeout:           cfg.RequestTimeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
		MaxRetries:        cfg.MaxRetries,
	}, logger)

	var src scrape.Source
	if cfg.FeedBaseURL != "" {
		src = scrape.NewFeedSource(client, cfg.FeedBaseURL, logger)
	} else {
		src = scrape.NewSiteSource(client, cfg.StatsBaseURL, logger)
	}

	return fn(ctx, cfg, src)
}

func buildRequest(stat, role string, season int, seasonType string) (scrape.Request, error) {
	var req scrape.Request

	category, err := schema.ParseCategory(stat)
	if err != nil {
		return req, err
	}

	var r schema.Role
	switch role {
	case "offense":
		r = schema.Offense
	case "defense":
		r = schema.Defense
	default:
		return req, fmt.Errorf("role must be 'offense' or 'defense', got %q", role)
	}

	if err := validateSeason(season); err != nil {
		return req, err
	}

	st, err := parseSeasonType(seasonType)
	if err != nil {
		return req, err
	}

	return scrape.Request{Category: category, Role: r, Season: season, SeasonType: st}, nil
}

func validateSeason(season int) error {
	if season < config.MinSeason || season > config.MaxSeason() {
		return fmt.Errorf("season must be between %d and %d", config.MinSeason, config.MaxSeason())
	}
	return nil
}

func parseSeasonType(s string) (schema.SeasonType, error) {
	switch s {
	case "Regular", "REG":
		return schema.RegularSeason, nil
	case "Playoffs", "POST":
		return schema.Postseason, nil
	default:
		return "", fmt.Errorf("season type must be 'Regular' or 'Playoffs', got %q", s)
	}
}

func fetchAndNormalize(ctx context.Context, src scrape.Source, req scrape.Request) (*normalize.Result, error) {
	tbl, err := src.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	return normalize.Normalize(tbl, req.Category, req.Role, req.Season, req.SeasonType)
}

func writeRecords(records []normalize.Record, req scrape.Request, out, format string) error {
	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "csv":
		return export.WriteCSV(w, records, req.Category, req.Role)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("format must be 'csv' or 'json', got %q", format)
	}
}
