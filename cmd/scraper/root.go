package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/polarlab/reddit-data/internal/config"
)

var (
	cfgFile string
	debug   bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "scraper",
	Short: "Collect subreddit posts around EURO 2024 for polarization research",
	Long: `scraper collects posts from country-specific subreddits over fixed
time windows, classifies them against per-country political keyword
lists, and exports raw and filtered CSV files.

Without --config, the built-in study configuration is used: r/de,
r/thenetherlands, and r/france over the pre, during, and post EURO 2024
windows.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config (built-in study defaults when empty)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "collect and classify without writing CSV files")

	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI with a context that cancels on shutdown signals.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig returns the built-in study configuration unless --config
// points at a YAML file.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(cfgFile)
}
