package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/matheuskafuri/aidash/internal/logging"
	"github.com/matheuskafuri/aidash/internal/update"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig    string
	flagSource    string
	flagNoPersist bool
)

var rootCmd = &cobra.Command{
	Use:   "aidash",
	Short: "TUI dashboard for aggregated AI news",
	Long:  "aidash shows the latest AI newsletter articles in a terminal dashboard with a featured carousel and a saved-articles list.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "feed URL or file, overrides the config")
	rootCmd.Flags().BoolVar(&flagNoPersist, "no-persist", false, "keep saved articles in memory only")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(savedCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "aidash %s (commit: %s, built: %s)\n", version, commit, date)

		var cache update.Cache
		if db, err := openStore(); err == nil {
			defer db.Close()
			cache = db
		}
		latest, err := update.NewChecker(cache).Newer(cmd.Context(), version)
		if err != nil {
			logging.Debug("update check failed", "err", err)
			return
		}
		if latest != "" {
			fmt.Fprintf(out, "A newer version is available: %s\n", latest)
		}
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
