// Package pipeline orchestrates batch scraping: fetch every requested
// (category, role) table, normalize each, and optionally write the
// canonical records out as CSV. Each request is independent, so the
// batch runs them across a small worker pool.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gridironlab/gridstats/internal/export"
	"github.com/gridironlab/gridstats/internal/normalize"
	"github.com/gridironlab/gridstats/internal/schema"
	"github.com/gridironlab/gridstats/internal/scrape"
)

// Options control one batch run.
type Options struct {
	Season     int
	SeasonType schema.SeasonType
	Roles      []schema.Role
	Categories []schema.Category
	Workers    int
	OutDir     string // empty = no CSV output
}

// Run fetches and normalizes every (category, role) pair in the options,
// in parallel across the worker pool. Failures are per-request: one bad
// page never stops the rest of the batch.
func Run(ctx context.Context, src scrape.Source, opts Options, logger *slog.Logger) *BatchResult {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	result := &BatchResult{}

	categories := opts.Categories
	if len(categories) == 0 {
		categories = schema.Categories
	}
	roles := opts.Roles
	if len(roles) == 0 {
		roles = []schema.Role{schema.Offense, schema.Defense}
	}

	var requests []scrape.Request
	for _, c := range categories {
		for _, r := range roles {
			requests = append(requests, scrape.Request{
				Category:   c,
				Role:       r,
				Season:     opts.Season,
				SeasonType: opts.SeasonType,
			})
		}
	}
	result.Requested = len(requests)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(requests) {
		workers = len(requests)
	}

	ch := make(chan scrape.Request, len(requests))
	for _, req := range requests {
		ch <- req
	}
	close(ch)

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range ch {
				res, err := runOne(ctx, src, req, opts.OutDir, logger)

				mu.Lock()
				if err != nil {
					result.Failed++
					result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", req, err))
				} else {
					result.Fetched++
					result.Records += len(res.Records)
					result.RowsSkipped += len(res.Skipped)
					for _, msg := range res.SkippedMessages() {
						result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", req, msg))
					}
				}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	result.Duration = time.Since(start)

	logger.Info("batch run complete", "summary", result.Summary())
	return result
}

// runOne fetches, normalizes, and optionally exports a single request.
func runOne(ctx context.Context, src scrape.Source, req scrape.Request, outDir string, logger *slog.Logger) (*normalize.Result, error) {
	tbl, err := src.Fetch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	res, err := normalize.Normalize(tbl, req.Category, req.Role, req.Season, req.SeasonType)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	logger.Info("normalized table", "request", req.String(), "summary", res.Summary())

	if outDir != "" {
		if err := writeCSVFile(outDir, req, res.Records); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func writeCSVFile(outDir string, req scrape.Request, records []normalize.Record) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s_%d_%s.csv",
		schema.Slug(req.Category), req.Role, req.Season, req.SeasonType)
	path := filepath.Join(outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, records, req.Category, req.Role); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
