package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/storage"
)

var migrateTo int64

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Open the database at a schema version and report it",
	Long: `Open the database, applying any pending schema upgrades up to the
requested version. Downgrades are refused.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().Int64Var(&migrateTo, "to", storage.SchemaVersion, "target schema version")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := storage.Open(cmd.Context(), storage.Options{
		Dir:     cfg.DataDir,
		Version: migrateTo,
		Logger:  logger.Named("storage"),
	})
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "%s at schema version %d\n", db.Path(), db.Version())
	return nil
}
