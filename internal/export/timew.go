// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/tframe/framectl/internal/frame"
)

// timewTime is the timewarrior UTC timestamp layout.
const timewTime = "20060102T150405Z"

// Timew writes one timewarrior interval record per frame:
//
//	inc 20160601T080000Z - 20160601T083000Z # "App.Feature" "Write tests" "dev"
//
// Timestamps are normalized to UTC, the only converter that does so.
// The tag set is the frame's tags plus the heading task and project when
// non-empty, deduplicated and emitted in sorted order. Unlike ledger and
// ical, a heading without "@" is fine: the whole string is the task.
func Timew(frames []frame.Frame, w io.Writer) error {
	for _, f := range frames {
		h := f.Heading()

		set := make(map[string]struct{}, len(f.Tags)+2)
		for _, t := range f.Tags {
			set[t] = struct{}{}
		}
		if h.Task != "" {
			set[h.Task] = struct{}{}
		}
		if q := h.Qualifier(); q != "" {
			set[q] = struct{}{}
		}

		tags := make([]string, 0, len(set))
		for t := range set {
			tags = append(tags, t)
		}
		sort.Strings(tags)

		fmt.Fprintf(w, "inc %s - %s #",
			f.Start.UTC().Format(timewTime),
			f.Stop.UTC().Format(timewTime))
		for _, t := range tags {
			fmt.Fprintf(w, " %q", t)
		}
		fmt.Fprintln(w)
	}
	return nil
}
