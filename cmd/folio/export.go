package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/storage"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every collection to stdout",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "json" && exportFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want json or yaml)", exportFormat)
	}
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := storage.Open(cmd.Context(), storage.Options{
		Dir:     cfg.DataDir,
		Version: cfg.SchemaVersion,
		Logger:  logger.Named("storage"),
	})
	if err != nil {
		return err
	}
	defer db.Close()

	store := content.New(db, logger)
	if err := store.LoadAll(cmd.Context()); err != nil {
		return err
	}
	return writeSnapshot(cmd.OutOrStdout(), exportFormat, store.Snapshot())
}

func writeSnapshot(w io.Writer, format string, snap content.Snapshot) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
