// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tframe/framectl/internal/frame"
	"github.com/tframe/framectl/internal/version"
)

// icalTime is the iCalendar local date-time layout. Timestamps carry no
// timezone suffix; consumers supply timezone context separately.
const icalTime = "20060102T150405"

// ICal writes a minimal iCalendar document with one VEVENT per frame.
// SUMMARY is the heading task, LOCATION the "@project.subject" part, so
// like the ledger converter it rejects frames without a project.
func ICal(frames []frame.Frame, w io.Writer) error {
	fmt.Fprintf(w, "BEGIN:VCALENDAR\n")
	fmt.Fprintf(w, "VERSION:2.0\n")
	fmt.Fprintf(w, "PRODID:-//framectl//framectl %s//EN\n", version.Version)

	for _, f := range frames {
		h := f.Heading()
		if !h.HasProject() {
			return fmt.Errorf("frame %s (%q): %w", f.ID, f.Project, frame.ErrNoProject)
		}

		fmt.Fprintf(w, "BEGIN:VEVENT\n")
		fmt.Fprintf(w, "SUMMARY:%s\n", h.Task)
		fmt.Fprintf(w, "LOCATION:%s\n", h.Qualifier())
		fmt.Fprintf(w, "DTSTART;VALUE=DATE-TIME:%s\n", f.Start.Format(icalTime))
		fmt.Fprintf(w, "DTEND;VALUE=DATE-TIME:%s\n", f.Stop.Format(icalTime))
		fmt.Fprintf(w, "DTSTAMP;VALUE=DATE-TIME:%s\n", f.UpdatedAt.Format(icalTime))
		fmt.Fprintf(w, "UID:%s\n", f.ID)
		fmt.Fprintf(w, "CATEGORIES:%s\n", strings.Join(f.Tags, ","))
		fmt.Fprintf(w, "END:VEVENT\n")
	}

	fmt.Fprintf(w, "END:VCALENDAR\n\n")
	return nil
}
