// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/zettel-export/internal/catalog"
	"github.com/pdiddy/zettel-export/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Index and search an exported zettel directory",
	Long: `Catalog maintains a SQLite index over an exported zettel directory,
with full-text search across titles and content. The index lives inside the
zettel directory and is rebuilt from scratch, matching the exporter's
wipe-and-rebuild lifecycle.`,
}

// --- build subcommand ---

var catalogBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the catalog from the zettel directory's sidecars",
	Long: `Build scans the zettel directory for metadata sidecars, parses each
one together with its content file, and rebuilds the catalog database with an
FTS5 full-text index. Prior catalog rows are dropped first.`,
	RunE: runCatalogBuild,
}

func runCatalogBuild(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Build(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d zettel failed indexing", summary.Failed)
	}
	return nil
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the catalog with full-text search and filters",
	Long: `Query searches the catalog using FTS5 full-text search over titles
and content, optionally filtered by role. Results are ranked by relevance for
full-text queries and sorted by identifier otherwise.`,
	RunE: runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search text or --role")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []catalog.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-14s  %-30s  %-8s  %-10s  %s\n",
		"Rank", "Zid", "Title", "Role", "Syntax", "File")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for i, r := range results {
		title := r.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-14s  %-30s  %-8s  %-10s  %s\n",
			i+1, r.Zid, title, r.Role, r.Syntax, r.ContentFile)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the catalog to YAML or JSON",
	Long: `Export writes the full catalog (or a filtered subset) to standard
output as YAML or JSON. Supports the same filter flags as query.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml":
		return store.ExportYAML(context.Background(), opts, os.Stdout)
	case "json":
		return store.ExportJSON(context.Background(), opts, os.Stdout)
	default:
		return fmt.Errorf("unknown format %q: want yaml or json", format)
	}
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*catalog.Store, error) {
	zettelDir, _ := cmd.Flags().GetString("zettel-dir")
	if zettelDir == "" {
		zettelDir = viper.GetString("export.zettel_dir")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		maxResults = viper.GetInt("catalog.max_results")
	}

	return catalog.NewStore(types.CatalogConfig{
		ZettelDir:  zettelDir,
		MaxResults: maxResults,
	})
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	role, _ := cmd.Flags().GetString("role")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      strings.Join(args, " "),
		Role:       role,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("zettel-dir", "", "zettel directory to catalog (default: the export output directory)")
	catalogCmd.PersistentFlags().Int("max-results", 0, "maximum number of query results")

	catalogQueryCmd.Flags().String("role", "", "filter by sidecar role")
	catalogQueryCmd.Flags().Int("limit", 0, "limit result count for this query")
	catalogQueryCmd.Flags().Bool("json", false, "output results as JSON")

	catalogExportCmd.Flags().String("role", "", "filter by sidecar role")
	catalogExportCmd.Flags().Int("limit", 0, "limit exported rows")
	catalogExportCmd.Flags().String("format", "yaml", "output format: yaml or json")

	catalogCmd.AddCommand(catalogBuildCmd, catalogQueryCmd, catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
