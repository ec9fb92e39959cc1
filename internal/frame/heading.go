// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"strings"
)

// ErrNoProject reports a heading whose composite string carries no
// "@project" part. The ledger and ical converters require one; the timew
// converter tolerates its absence.
var ErrNoProject = errors.New("heading has no @project part")

// Heading is the parsed form of the composite project string
// "task@project.subject". Parsing happens in exactly one place so each
// converter doesn't re-decide how to split, only whether a missing
// project is fatal for its format.
type Heading struct {
	// Task is the text before the first '@', or the whole string when
	// there is no '@'. May be empty.
	Task string
	// Project is the text between the first '@' and the first '.' that
	// follows it. Empty when the heading has no '@'.
	Project string
	// Subject is the text after that '.', possibly itself dotted.
	// Optional.
	Subject string

	hasProject bool
}

// ParseHeading splits a composite project string. It never fails; use
// HasProject to decide whether a missing "@" is an error for the caller.
func ParseHeading(s string) Heading {
	task, rest, found := strings.Cut(s, "@")
	if !found {
		return Heading{Task: s}
	}

	project, subject, _ := strings.Cut(rest, ".")
	return Heading{
		Task:       task,
		Project:    project,
		Subject:    subject,
		hasProject: true,
	}
}

// HasProject reports whether the original string contained an '@'.
func (h Heading) HasProject() bool {
	return h.hasProject
}

// Qualifier returns the raw text after the '@' ("project.subject"), the
// form the ical LOCATION and timew tag set use. Empty without a project.
func (h Heading) Qualifier() string {
	if !h.hasProject {
		return ""
	}
	if h.Subject == "" {
		return h.Project
	}
	return h.Project + "." + h.Subject
}

// Account returns the ledger account form of the qualifier, with the
// dot hierarchy rewritten as colons ("project:subject").
func (h Heading) Account() string {
	return strings.ReplaceAll(h.Qualifier(), ".", ":")
}
