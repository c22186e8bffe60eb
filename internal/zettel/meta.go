// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zettel

import (
	"fmt"
	"strings"
)

// Metadata keys, in the order the sidecar writes them.
const (
	KeyTitle   = "title"
	KeyRole    = "role"
	KeySyntax  = "syntax"
	KeyCreated = "created"
)

// Default field values for exported zettel.
const (
	RoleZettel     = "zettel"
	SyntaxMarkdown = "markdown"
)

// Meta is the metadata sidecar of one zettel: four key-value fields,
// serialized as one "key: value" line each, in fixed order.
type Meta struct {
	Title   string
	Role    string
	Syntax  string
	Created Zid
}

// NewMeta builds the sidecar for an exported file: the title derived
// from the destination stem, fixed role and syntax, and the allocated
// identifier as creation timestamp.
func NewMeta(stem string, zid Zid) Meta {
	return Meta{
		Title:   Title(stem),
		Role:    RoleZettel,
		Syntax:  SyntaxMarkdown,
		Created: zid,
	}
}

// Render serializes m in the sidecar format: four lines, fixed key
// order, each newline-terminated. No escaping; values are written as-is.
func (m Meta) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", KeyTitle, m.Title)
	fmt.Fprintf(&b, "%s: %s\n", KeyRole, m.Role)
	fmt.Fprintf(&b, "%s: %s\n", KeySyntax, m.Syntax)
	fmt.Fprintf(&b, "%s: %s\n", KeyCreated, m.Created)
	return b.String()
}

// ParseMeta reads a sidecar back into a Meta. Lines without a colon and
// unknown keys are skipped; missing fields stay zero. The catalog uses
// this to index directories produced by earlier runs.
func ParseMeta(data []byte) Meta {
	var m Meta
	for _, line := range strings.SplitAfter(string(data), "\n") {
		key, value, ok := strings.Cut(strings.TrimRight(line, "\n"), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case KeyTitle:
			m.Title = value
		case KeyRole:
			m.Role = value
		case KeySyntax:
			m.Syntax = value
		case KeyCreated:
			m.Created = Zid(value)
		}
	}
	return m
}
