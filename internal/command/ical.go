// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/tframe/framectl/internal/export"
	"github.com/tframe/framectl/internal/meta"
)

// ICalCommandBuilder constructs the cli.Command for "ical".
func ICalCommandBuilder(m meta.Meta) *cli.Command {
	ecb := &ExportCommandBuilder{
		Name:      "ical",
		Usage:     "export frames as an iCalendar document",
		UsageText: "framectl ical [options]",
		Renderer:  export.ICal,
		Meta:      m,
	}
	return ecb.Build()
}
