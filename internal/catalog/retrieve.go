// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string, matched against
	// titles and content.
	Query string

	// Role filters by the sidecar role field.
	Role string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Role == ""
}

// QueryResult is one catalog row.
type QueryResult struct {
	Zid         string `json:"zid" yaml:"zid"`
	Title       string `json:"title" yaml:"title"`
	Role        string `json:"role" yaml:"role"`
	Syntax      string `json:"syntax" yaml:"syntax"`
	Created     string `json:"created" yaml:"created"`
	ContentFile string `json:"content_file,omitempty" yaml:"content_file,omitempty"`
}

// Retrieve queries the catalog with optional full-text search and a
// role filter. Full-text queries are ranked by relevance; structured
// queries are sorted by zid.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT z.zid, z.title, z.role, z.syntax, z.created, z.content_file
			FROM zettel_fts
			JOIN zettel z ON z.rowid = zettel_fts.rowid
			WHERE zettel_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT z.zid, z.title, z.role, z.syntax, z.created, z.content_file
			FROM zettel z
			WHERE 1=1`)
	}

	if opts.Role != "" {
		qb.WriteString(` AND z.role = ?`)
		args = append(args, opts.Role)
	}

	if useFTS {
		qb.WriteString(` ORDER BY zettel_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY z.zid`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var qr QueryResult
		if err := rows.Scan(&qr.Zid, &qr.Title, &qr.Role, &qr.Syntax, &qr.Created, &qr.ContentFile); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		results = append(results, qr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog rows: %w", err)
	}
	return results, nil
}
