// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration records shared between the CLI and
// the internal stages.
package types

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// FilesDir is the directory whose immediate regular files are
	// exported (default "files.md", a directory despite the name).
	FilesDir string `json:"files_dir" yaml:"files_dir"`

	// ZettelDir is the output directory, wiped and rebuilt on every
	// run (default "zettel").
	ZettelDir string `json:"zettel_dir" yaml:"zettel_dir"`

	// Verbose enables per-file status lines. The default run is
	// silent on success.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// CatalogConfig holds settings for the catalog stage.
type CatalogConfig struct {
	// ZettelDir is the exported zettel directory the catalog indexes.
	ZettelDir string `json:"zettel_dir" yaml:"zettel_dir"`

	// MaxResults is the default maximum number of query results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
