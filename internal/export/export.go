// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export turns a directory of source files into a Zettelstore
// box directory: one content file plus one metadata sidecar per input,
// named by a run-relative zettel identifier.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/zettel-export/internal/zettel"
	"github.com/pdiddy/zettel-export/pkg/types"
)

// Result holds the outcome of an export run.
type Result struct {
	Exported int
	Cleanup  CleanupStatus
}

// Run performs one full export: reset the output directory, enumerate
// the input directory's immediate regular files, and write a zettel
// pair for each. Diagnostics go to w; the run writes nothing there on
// the default, successful path. Any I/O failure after the reset aborts
// the run, leaving already-written pairs on disk.
func Run(cfg types.ExportConfig, w io.Writer) (Result, error) {
	cleanup, err := ResetDir(cfg.ZettelDir, w)
	if err != nil {
		return Result{Cleanup: cleanup}, err
	}
	result := Result{Cleanup: cleanup}

	entries, err := os.ReadDir(cfg.FilesDir)
	if err != nil {
		return result, fmt.Errorf("reading input directory %s: %w", cfg.FilesDir, err)
	}

	alloc := zettel.NewAllocator()
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		zid := alloc.Next()
		name, err := writePair(cfg.FilesDir, cfg.ZettelDir, entry.Name(), zid)
		if err != nil {
			return result, err
		}
		if cfg.Verbose {
			fmt.Fprintf(w, "exported: %s\n", name)
		}
		result.Exported++
	}

	if cfg.Verbose {
		fmt.Fprintf(w, "\n%d zettel exported\n", result.Exported)
	}
	return result, nil
}

// writePair copies one input file under its zettel name and writes the
// metadata sidecar next to it. It returns the content file name.
func writePair(filesDir, zettelDir, name string, zid zettel.Zid) (string, error) {
	stem := zettel.Stem(name)
	ext := filepath.Ext(name)
	contentName := zettel.ContentName(zid, stem, ext)

	src := filepath.Join(filesDir, name)
	if err := copyFile(src, filepath.Join(zettelDir, contentName)); err != nil {
		return "", err
	}

	meta := zettel.NewMeta(stem, zid)
	metaPath := filepath.Join(zettelDir, zettel.MetaName(zid, stem))
	if err := os.WriteFile(metaPath, []byte(meta.Render()), 0o644); err != nil {
		return "", fmt.Errorf("writing metadata %s: %w", metaPath, err)
	}

	return contentName, nil
}

// copyFile copies src to dst byte for byte, overwriting dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
