// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/zettel-export/internal/export"
	"github.com/pdiddy/zettel-export/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Rebuild the zettel directory from the input files",
	Long: `Export wipes the zettel directory, then copies every regular file in
the input directory into it under a fresh identifier, writing a metadata
sidecar next to each copy. Identifiers start at 19800101000000 and advance one
minute per file; they are assigned in directory order and restart at the epoch
on every run.

The run is silent on success. The only non-fatal diagnostic is a failed
removal of the previous output directory, which is reported and skipped.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := exportConfig(cmd)
	_, err := export.Run(cfg, os.Stdout)
	return err
}

// exportConfig resolves the export settings: flags win over config file
// values, config file values over the built-in defaults.
func exportConfig(cmd *cobra.Command) types.ExportConfig {
	cfg := types.ExportConfig{
		FilesDir:  viper.GetString("export.files_dir"),
		ZettelDir: viper.GetString("export.zettel_dir"),
	}
	if cmd.Flags().Changed("files-dir") {
		cfg.FilesDir, _ = cmd.Flags().GetString("files-dir")
	}
	if cmd.Flags().Changed("zettel-dir") {
		cfg.ZettelDir, _ = cmd.Flags().GetString("zettel-dir")
	}
	cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	return cfg
}

func init() {
	exportCmd.Flags().String("files-dir", "files.md", "input directory (a directory, despite the name)")
	exportCmd.Flags().String("zettel-dir", "zettel", "output directory, wiped and rebuilt each run")
	exportCmd.Flags().BoolP("verbose", "v", false, "print a status line per exported file")

	rootCmd.AddCommand(exportCmd)
}
