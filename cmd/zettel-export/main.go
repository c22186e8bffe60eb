// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the zettel-export CLI: a batch
// tool that turns a directory of source files into a Zettelstore box
// directory, plus a catalog for searching the result.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the zettel-export CLI.
var rootCmd = &cobra.Command{
	Use:   "zettel-export",
	Short: "Export a directory of files as Zettelstore zettel",
	Long: `zettel-export rebuilds a zettel directory from the files in an input
directory. Each input file becomes a pair: a byte-identical content copy and a
metadata sidecar, both named by a run-relative 14-digit identifier.

The export is a full batch pass: the output directory is wiped and recreated
on every run. Use the catalog subcommands to index and search an exported
directory.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./zettel-export.yaml or ~/.config/zettel-export/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("zettel-export")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "zettel-export"))
		}
	}

	viper.SetEnvPrefix("ZETTEL_EXPORT")
	viper.AutomaticEnv()

	viper.SetDefault("export.files_dir", "files.md")
	viper.SetDefault("export.zettel_dir", "zettel")
	viper.SetDefault("catalog.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
