// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package frame

import (
	"sort"
	"time"
)

// Frame is one recorded time interval from the Watson store. Frames are
// read-only inputs to framectl; nothing here creates or mutates them.
type Frame struct {
	ID        string
	Start     time.Time
	Stop      time.Time
	UpdatedAt time.Time
	Project   string
	Tags      []string
}

// Duration returns the recorded span. Stop >= Start is a store invariant.
func (f Frame) Duration() time.Duration {
	return f.Stop.Sub(f.Start)
}

// Heading parses the frame's composite project string.
func (f Frame) Heading() Heading {
	return ParseHeading(f.Project)
}

// SortByStart returns a new slice with the same frames ordered
// non-decreasing by Start. The sort is stable, so frames with equal start
// times keep their relative input order. The input slice is not modified.
func SortByStart(frames []Frame) []Frame {
	sorted := make([]Frame, len(frames))
	copy(sorted, frames)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}
