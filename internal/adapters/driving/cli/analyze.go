package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/anastluc/gdocs-participation-statistics/internal/adapters/driven/auth"
	"github.com/anastluc/gdocs-participation-statistics/internal/adapters/driven/config"
	"github.com/anastluc/gdocs-participation-statistics/internal/adapters/driven/googledocs"
	"github.com/anastluc/gdocs-participation-statistics/internal/adapters/driven/render"
	"github.com/anastluc/gdocs-participation-statistics/internal/core/services"
	"github.com/anastluc/gdocs-participation-statistics/internal/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [document-id]",
	Short: "Analyze the participation history of a Google Doc",
	Long: `Analyze the revision, comment, and activity history of a Google Doc.

The document ID is the long identifier in the document URL:
https://docs.google.com/document/d/<document-id>/edit

The word growth stage downloads a text export of every revision. With
the default pacing of one export every few seconds, documents with
hundreds of revisions take a while; interrupt with Ctrl-C to abort, or
use --skip-word-growth for a quick report.

Examples:
  gdocstats analyze 1a2b3c4d5e6f
  gdocstats analyze 1a2b3c4d5e6f --skip-word-growth
  gdocstats analyze 1a2b3c4d5e6f --lookback-days 90 --output report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// Flags for analyze. Zero values mean "use the config file".
var (
	analyzeFetchDelay   int
	analyzeLookbackDays int
	analyzeOutputHTML   string
	analyzeBaseline     string
	analyzeSkipGrowth   bool
	analyzeNoChart      bool
)

func init() {
	analyzeCmd.Flags().IntVar(
		&analyzeFetchDelay, "fetch-delay", 0, "Seconds between revision content downloads")
	analyzeCmd.Flags().IntVar(
		&analyzeLookbackDays, "lookback-days", 0, "Days of activity history to query")
	analyzeCmd.Flags().StringVarP(
		&analyzeOutputHTML, "output", "o", "", "Path of the generated HTML chart page")
	analyzeCmd.Flags().StringVar(
		&analyzeBaseline, "baseline", "", "Word growth baseline policy (on-retain, every-revision)")
	analyzeCmd.Flags().BoolVar(
		&analyzeSkipGrowth, "skip-word-growth", false, "Skip the per-revision word count walk")
	analyzeCmd.Flags().BoolVar(
		&analyzeNoChart, "no-chart", false, "Skip writing the HTML chart page")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	docID := args[0]

	cfg, err := config.LoadDefault()
	if err != nil {
		logger.Warn("loading config: %v (using defaults)", err)
	}
	applyAnalyzeFlags(cmd, &cfg)

	configDir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ts, err := auth.TokenSource(ctx, configDir)
	if err != nil {
		return err
	}

	fetchDelay := time.Duration(cfg.FetchDelaySeconds) * time.Second
	client, err := googledocs.NewClient(ctx, ts, fetchDelay)
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	var chart *render.Chart
	if !analyzeNoChart {
		chart = render.NewChart(cfg.OutputHTML)
	}
	sink := render.NewConsole(cmd.OutOrStdout(), chart)

	var tracker *services.WordGrowthTracker
	if !cfg.SkipWordGrowth {
		tracker = services.NewWordGrowthTracker(client, services.ParseBaselinePolicy(cfg.BaselinePolicy))
	}

	analyzer := services.NewAnalyzer(client, client, client, client, tracker, sink, services.AnalyzerConfig{
		Lookback:       time.Duration(cfg.LookbackDays) * 24 * time.Hour,
		SkipWordGrowth: cfg.SkipWordGrowth,
	})

	logger.Info("analyzing document %s", docID)
	return analyzer.Run(ctx, docID)
}

// applyAnalyzeFlags overrides config values with explicitly set flags.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("fetch-delay") {
		cfg.FetchDelaySeconds = analyzeFetchDelay
	}
	if cmd.Flags().Changed("lookback-days") {
		cfg.LookbackDays = analyzeLookbackDays
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputHTML = analyzeOutputHTML
	}
	if cmd.Flags().Changed("baseline") {
		cfg.BaselinePolicy = analyzeBaseline
	}
	if analyzeSkipGrowth {
		cfg.SkipWordGrowth = true
	}
}
