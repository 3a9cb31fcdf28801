// Package cli implements the gdocstats command tree. Commands register
// themselves on the root command from their init functions.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/anastluc/gdocs-participation-statistics/internal/logger"
)

// version is set by main at startup (build-time injection).
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gdocstats",
	Short: "Participation statistics for Google Docs",
	Long: `gdocstats analyzes the revision, comment, and activity history of a
Google Doc and reports who contributed what: per-user revision counts,
comment and reply activity, word count growth over time, and daily
activity metrics, as console tables and an interactive HTML chart page.

Authentication uses OAuth; place your Google Cloud credentials.json in
~/.gdocstats/ (or the working directory) and run 'gdocstats auth login'
once before the first analysis.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose progress output")
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}
