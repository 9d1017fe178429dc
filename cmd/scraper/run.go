package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/polarlab/reddit-data/internal/api"
	"github.com/polarlab/reddit-data/internal/auth"
	"github.com/polarlab/reddit-data/internal/collect"
	"github.com/polarlab/reddit-data/internal/export"
	"github.com/polarlab/reddit-data/internal/filter"
	"github.com/polarlab/reddit-data/internal/version"
)

// run executes one full collection pass over every source and window.
func run(ctx context.Context) error {
	logger := slog.Default()

	logger.Info("starting scraper",
		"version", version.Version,
		"commit", version.Commit,
		"config", cfgFile,
	)

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return err
	}

	creds, err := auth.LoadCredentials()
	if err != nil {
		logger.Error("missing reddit credentials", "error", err)
		return err
	}

	tokens := auth.New(creds,
		auth.WithTokenURL(cfg.API.TokenURL),
		auth.WithLogger(logger),
	)
	client := api.NewClient(cfg.API.BaseURL, creds.UserAgent, tokens,
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, time.Second),
		api.WithLogger(logger),
	)

	// Application-only tokens carry no user identity; a failed probe just
	// means the session is read-only, which is all collection needs.
	if me, err := client.Me(ctx); err != nil {
		logger.Info("reddit client initialized (read-only)")
	} else {
		logger.Info("authenticated with reddit", "user", me.Name)
	}

	collector := collect.New(
		collect.Config{
			MaxPosts:      cfg.Collect.MaxPosts,
			TopLimit:      cfg.Collect.TopLimit,
			PageSize:      cfg.Collect.PageSize,
			RecencyCutoff: cfg.Collect.RecencyCutoff,
		},
		client,
		collect.NewRateLimiter(cfg.Collect.RequestInterval),
		logger,
	)
	writer := export.NewWriter(cfg.Output.RawDir, cfg.Output.CleanDir, logger)
	manifest := export.NewManifest()

	logger.Info("run started",
		"run_id", manifest.RunID(),
		"sources", len(cfg.Sources),
		"windows", len(cfg.Windows),
		"dry_run", dryRun,
	)

runs:
	for _, sourceCfg := range cfg.Sources {
		source := sourceCfg.ToModel()
		matcher := filter.New(source.Keywords)

		for _, windowCfg := range cfg.Windows {
			if ctx.Err() != nil {
				logger.Warn("run aborted, keeping partial results", "err", ctx.Err())
				break runs
			}
			window := windowCfg.ToModel()

			logger.Info("collecting",
				"source", source.Name,
				"subreddit", source.Subreddit,
				"window", window.Name,
				"start", window.Start.Format("2006-01-02"),
				"end", window.End.Format("2006-01-02"),
			)

			posts, stats := collector.Collect(ctx, source, window)
			matched := matcher.Filter(posts)

			manifest.Add(export.ManifestRow{
				Source:    source.Name,
				Window:    window.Name,
				Start:     window.Start,
				End:       window.End,
				Collected: len(posts),
				Matched:   len(matched),
				Errors:    stats.Errors,
			})

			switch {
			case len(posts) == 0:
				logger.Info("no posts found",
					"source", source.Name,
					"window", window.Name,
				)
			case dryRun:
				logger.Info("dry run, skipping writes",
					"source", source.Name,
					"window", window.Name,
					"collected", len(posts),
					"matched", len(matched),
				)
			default:
				if _, err := writer.WriteRaw(source.Name, window.Name, posts); err != nil {
					logger.Error("failed to write raw posts",
						"source", source.Name,
						"window", window.Name,
						"error", err,
					)
				}
				if len(matched) == 0 {
					logger.Info("no political posts found",
						"source", source.Name,
						"window", window.Name,
					)
				} else if _, err := writer.WriteFiltered(source.Name, window.Name, matched); err != nil {
					logger.Error("failed to write political posts",
						"source", source.Name,
						"window", window.Name,
						"error", err,
					)
				}
			}

			// Pause between runs to stay polite to the API.
			select {
			case <-ctx.Done():
			case <-time.After(cfg.Collect.RunPause):
			}
		}
	}

	if !dryRun {
		if path, err := manifest.Write(cfg.Output.RawDir); err != nil {
			logger.Error("failed to write manifest", "error", err)
		} else if path != "" {
			logger.Info("wrote manifest", "path", path)
		}
	}

	printSummary(manifest)

	logger.Info("run complete",
		"run_id", manifest.RunID(),
		"duration", time.Since(manifest.Started()),
	)

	return ctx.Err()
}

// printSummary renders one row per source and window collected.
func printSummary(manifest *export.Manifest) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Source", "Window", "Start", "End", "Collected", "Political", "Errors"})
	for _, row := range manifest.Rows() {
		t.AppendRow(table.Row{
			row.Source,
			row.Window,
			row.Start.Format("2006-01-02"),
			row.End.Format("2006-01-02"),
			row.Collected,
			row.Matched,
			row.Errors,
		})
	}
	t.Render()
}
