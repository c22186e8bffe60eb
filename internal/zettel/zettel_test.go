// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package zettel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocator(t *testing.T) {
	a := NewAllocator()

	assert.Equal(t, Epoch, a.Next())
	assert.Equal(t, Zid("19800101000100"), a.Next())
	assert.Equal(t, Zid("19800101000200"), a.Next())
}

func TestAllocatorHourRollover(t *testing.T) {
	a := NewAllocator()
	var last Zid
	for i := 0; i < 61; i++ {
		last = a.Next()
	}
	assert.Equal(t, Zid("19800101010000"), last)
}

func TestAllocatorRestartsAtEpoch(t *testing.T) {
	a := NewAllocator()
	a.Next()
	a.Next()

	// A fresh allocator knows nothing about earlier runs.
	assert.Equal(t, Epoch, NewAllocator().Next())
}

func TestZidTimeRoundTrip(t *testing.T) {
	want := time.Date(2024, time.March, 7, 13, 45, 9, 0, time.UTC)
	zid := ZidFromTime(want)
	require.Equal(t, Zid("20240307134509"), zid)

	got, err := zid.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestZidIsValid(t *testing.T) {
	tests := []struct {
		zid  Zid
		want bool
	}{
		{"19800101000000", true},
		{"20240307134509", true},
		{"1980010100000", false},   // 13 digits
		{"198001010000000", false}, // 15 digits
		{"19801301000000", false},  // month 13
		{"1980010100000x", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.zid.IsValid(), "zid %q", tt.zid)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"note.txt", "note"},
		{"a.b.md", "a_b"},
		{"v1.2.3.tar", "v1_2_3"},
		{"plain", "plain"},
		{"trailing.", "trailing"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stem(tt.name), "name %q", tt.name)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"note", "Note"},
		{"a_b", "A_b"},
		{"Already", "Already"},
		{"über", "Über"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Title(tt.stem), "stem %q", tt.stem)
	}
}

func TestNames(t *testing.T) {
	zid := Zid("19800101000000")

	assert.Equal(t, "19800101000000 a_b.md", ContentName(zid, "a_b", ".md"))
	assert.Equal(t, "19800101000000 a_b", MetaName(zid, "a_b"))
}

func TestMetaRender(t *testing.T) {
	m := NewMeta("a_b", "19800101000100")

	want := "title: A_b\n" +
		"role: zettel\n" +
		"syntax: markdown\n" +
		"created: 19800101000100\n"
	assert.Equal(t, want, m.Render())
}

func TestParseMeta(t *testing.T) {
	m := NewMeta("note", "19800101000000")

	got := ParseMeta([]byte(m.Render()))
	assert.Equal(t, m, got)
}

func TestParseMetaSkipsJunk(t *testing.T) {
	data := []byte("title: Note\nnot a field line\nflavor: vanilla\nrole: zettel\n")

	got := ParseMeta(data)
	assert.Equal(t, "Note", got.Title)
	assert.Equal(t, "zettel", got.Role)
	assert.Empty(t, got.Syntax)
	assert.Empty(t, got.Created)
}
