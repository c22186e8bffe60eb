// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog maintains a SQLite index over an exported zettel
// directory. It is a read-side companion to the exporter: the exporter
// wipes and rebuilds the directory, the catalog wipes and rebuilds the
// index from the sidecars it finds there.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/zettel-export/internal/zettel"
	"github.com/pdiddy/zettel-export/pkg/types"
)

// dbFile is the catalog database, kept inside the zettel directory so
// an export run discards it along with everything else.
const dbFile = ".catalog.db"

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	zettelDir  string
	maxResults int
}

// NewStore opens or creates the catalog database at
// zettelDir/.catalog.db and ensures the schema exists.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if _, err := os.Stat(cfg.ZettelDir); err != nil {
		return nil, fmt.Errorf("zettel directory %s: %w", cfg.ZettelDir, err)
	}

	dbPath := filepath.Join(cfg.ZettelDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		zettelDir:  cfg.ZettelDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS zettel (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			zid TEXT NOT NULL UNIQUE,
			title TEXT,
			role TEXT,
			syntax TEXT,
			created TEXT,
			content_file TEXT,
			content TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_zettel_role ON zettel(role)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='zettel_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE zettel_fts USING fts5(title, content, content=zettel, content_rowid=rowid)`,
			`CREATE TRIGGER zettel_ai AFTER INSERT ON zettel BEGIN
				INSERT INTO zettel_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
			`CREATE TRIGGER zettel_ad AFTER DELETE ON zettel BEGIN
				INSERT INTO zettel_fts(zettel_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
			END`,
			`CREATE TRIGGER zettel_au AFTER UPDATE ON zettel BEGIN
				INSERT INTO zettel_fts(zettel_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
				INSERT INTO zettel_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// BuildSummary holds counts from a catalog build.
type BuildSummary struct {
	Indexed int
	Failed  int
}

// Build scans the zettel directory for metadata sidecars and rebuilds
// the catalog from scratch. Like the exporter itself it is a full
// batch pass, not an incremental sync: prior rows are dropped first.
// Per-zettel status goes to w.
func (s *Store) Build(ctx context.Context, w io.Writer) (BuildSummary, error) {
	entries, err := os.ReadDir(s.zettelDir)
	if err != nil {
		return BuildSummary{}, fmt.Errorf("reading zettel directory %s: %w", s.zettelDir, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BuildSummary{}, fmt.Errorf("starting build transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM zettel`); err != nil {
		return BuildSummary{}, fmt.Errorf("clearing catalog: %w", err)
	}

	var summary BuildSummary
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		zid, stem, ok := splitMetaName(entry.Name())
		if !ok {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.zettelDir, entry.Name()))
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", entry.Name(), err)
			summary.Failed++
			continue
		}
		meta := zettel.ParseMeta(data)

		contentFile, content := s.readContent(entries, zid, stem)

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO zettel (zid, title, role, syntax, created, content_file, content)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(zid), meta.Title, meta.Role, meta.Syntax, string(meta.Created), contentFile, content,
		); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", entry.Name(), err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "indexed %s %s\n", zid, stem)
		summary.Indexed++
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing build: %w", err)
	}

	fmt.Fprintf(w, "\nindexed: %d, failed: %d\n", summary.Indexed, summary.Failed)
	return summary, nil
}

// splitMetaName recognizes a metadata sidecar name: "<zid> <stem>"
// where zid is a valid 14-digit identifier and the stem carries no
// extension. Content files fail the extension check.
func splitMetaName(name string) (zettel.Zid, string, bool) {
	zidPart, stem, ok := strings.Cut(name, " ")
	if !ok || stem == "" {
		return "", "", false
	}
	zid := zettel.Zid(zidPart)
	if !zid.IsValid() || filepath.Ext(stem) != "" {
		return "", "", false
	}
	return zid, stem, true
}

// readContent locates the content file for a sidecar among the
// directory entries and returns its name and text. Inputs without an
// extension have no separate content file; both are reported empty.
func (s *Store) readContent(entries []os.DirEntry, zid zettel.Zid, stem string) (string, string) {
	prefix := zettel.MetaName(zid, stem) + "."
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.zettelDir, entry.Name()))
		if err != nil {
			return entry.Name(), ""
		}
		return entry.Name(), string(data)
	}
	return "", ""
}
