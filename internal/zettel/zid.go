// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package zettel holds the domain model shared by the exporter and the
// catalog: zettel identifiers, the metadata sidecar format, and the
// file naming scheme.
package zettel

import (
	"fmt"
	"time"
)

// Zid is a zettel identifier: a 14-digit timestamp of the form
// YYYYMMDDHHMMSS. It names both files of an exported zettel pair.
type Zid string

// zidLayout is the time layout a Zid encodes.
const zidLayout = "20060102150405"

// Epoch is the first identifier an Allocator hands out.
const Epoch Zid = "19800101000000"

// epochTime is Epoch as a time.Time, used to seed allocators.
var epochTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// ZidFromTime encodes t as a Zid.
func ZidFromTime(t time.Time) Zid {
	return Zid(t.Format(zidLayout))
}

// IsValid reports whether z is exactly 14 digits encoding a real
// calendar timestamp.
func (z Zid) IsValid() bool {
	_, err := z.Time()
	return err == nil
}

// Time decodes z back into the timestamp it encodes.
func (z Zid) Time() (time.Time, error) {
	if len(z) != len(zidLayout) {
		return time.Time{}, fmt.Errorf("zid %q: want %d digits, got %d", string(z), len(zidLayout), len(z))
	}
	t, err := time.Parse(zidLayout, string(z))
	if err != nil {
		return time.Time{}, fmt.Errorf("zid %q: %w", string(z), err)
	}
	return t, nil
}

// String returns the 14-digit form.
func (z Zid) String() string {
	return string(z)
}

// Allocator hands out strictly increasing zids, one minute apart,
// starting at Epoch. Identifiers are run-relative: a fresh allocator
// restarts at the epoch, nothing is persisted between runs.
type Allocator struct {
	next time.Time
}

// NewAllocator returns an allocator positioned at Epoch.
func NewAllocator() *Allocator {
	return &Allocator{next: epochTime}
}

// Next returns the next identifier and advances the allocator by one
// minute.
func (a *Allocator) Next() Zid {
	zid := ZidFromTime(a.next)
	a.next = a.next.Add(time.Minute)
	return zid
}
