// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package frame

import "time"

// Filter restricts a frame set by start-time range and heading fields.
// Zero-valued fields are ignored.
type Filter struct {
	From    time.Time // inclusive lower bound on Start
	To      time.Time // exclusive upper bound on Start
	Project string
	Tag     string
}

// Apply returns the frames matching every set criterion, in input order.
func (flt Filter) Apply(frames []Frame) []Frame {
	if flt.isZero() {
		return frames
	}

	//nolint:prealloc // We don't know what len will be and performance is
	// not critical.
	var matched []Frame
	for _, f := range frames {
		if !flt.From.IsZero() && f.Start.Before(flt.From) {
			continue
		}
		if !flt.To.IsZero() && !f.Start.Before(flt.To) {
			continue
		}
		if flt.Project != "" && f.Heading().Project != flt.Project {
			continue
		}
		if flt.Tag != "" && !hasTag(f.Tags, flt.Tag) {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}

func (flt Filter) isZero() bool {
	return flt.From.IsZero() && flt.To.IsZero() &&
		flt.Project == "" && flt.Tag == ""
}

func hasTag(tags []string, target string) bool {
	for _, t := range tags {
		if t == target {
			return true
		}
	}
	return false
}
