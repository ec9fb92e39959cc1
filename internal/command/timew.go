// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/tframe/framectl/internal/export"
	"github.com/tframe/framectl/internal/meta"
)

// TimewCommandBuilder constructs the cli.Command for "timew". Unlike
// ledger and ical this format tolerates frames without an @project part.
func TimewCommandBuilder(m meta.Meta) *cli.Command {
	ecb := &ExportCommandBuilder{
		Name:      "timew",
		Usage:     "export frames as timewarrior inc lines",
		UsageText: "framectl timew [options]",
		Renderer:  export.Timew,
		Meta:      m,
	}
	return ecb.Build()
}
