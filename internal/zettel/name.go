// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zettel

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Stem derives the destination stem from a source file name: the name
// without its final extension, with every remaining dot replaced by an
// underscore. Zettelstore treats dots in the stem as metadata
// separators, so "a.b.md" becomes stem "a_b".
func Stem(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ReplaceAll(base, ".", "_")
}

// Title derives the sidecar title from a stem: the first rune
// upper-cased, the rest unchanged.
func Title(stem string) string {
	if stem == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(stem)
	return string(unicode.ToUpper(r)) + stem[size:]
}

// ContentName is the file name of the zettel content file:
// "<zid> <stem><ext>", with ext including its leading dot.
func ContentName(zid Zid, stem, ext string) string {
	return string(zid) + " " + stem + ext
}

// MetaName is the file name of the metadata sidecar: "<zid> <stem>",
// with no extension.
func MetaName(zid Zid, stem string) string {
	return string(zid) + " " + stem
}
