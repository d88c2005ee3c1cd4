// Command folio serves the portfolio site and manages its local database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/folio"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A bilingual personal portfolio site with in-place editing",
	Long: `folio serves a single-user portfolio site (profile text, skills,
experience timeline, blog posts, profile image) backed by a local SQLite
database. Configuration is read from FOLIO_* environment variables.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the folio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, exportCmd, versionCmd)
}

// setup loads the configuration and builds the logger shared by subcommands.
func setup() (folio.SiteConfig, *zap.Logger, error) {
	cfg, err := folio.LoadConfig()
	if err != nil {
		return folio.SiteConfig{}, nil, err
	}
	logger, err := folio.NewLogger(cfg)
	if err != nil {
		return folio.SiteConfig{}, nil, err
	}
	return cfg, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
