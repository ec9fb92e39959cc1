// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tframe/framectl/internal/frame"
)

// Ledger writes one ledger transaction per frame, each terminated by a
// blank line:
//
//	2016/06/01 (abc)  Write tests
//	    ; :dev:
//	    (App:Feature) \t1800s
//
// The date is the frame's local start date and the posting amount is the
// frame length in rounded whole seconds. The account is the heading's
// "@project.subject" part with dots rewritten as colons, so a frame
// without a project part is an error here.
func Ledger(frames []frame.Frame, w io.Writer) error {
	for _, f := range frames {
		h := f.Heading()
		if !h.HasProject() {
			return fmt.Errorf("frame %s (%q): %w", f.ID, f.Project, frame.ErrNoProject)
		}

		fmt.Fprintf(w, "%s (%s)  %s\n",
			f.Start.Format("2006/01/02"), f.ID, h.Task)
		fmt.Fprintf(w, "    ; %s\n", tagLine(f.Tags))
		fmt.Fprintf(w, "    (%s) \t%.0fs\n\n",
			h.Account(), f.Duration().Seconds())
	}
	return nil
}

// tagLine renders ":tag1:tag2:" or nothing at all for an untagged frame.
func tagLine(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return ":" + strings.Join(tags, ":") + ":"
}
