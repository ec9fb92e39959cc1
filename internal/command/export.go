// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tframe/framectl/internal/export"
	"github.com/tframe/framectl/internal/meta"
)

// ExportCommandBuilder constructs a cli.Command for the export
// subcommands (ledger, ical, timew) using a consistent pattern: shared
// global flags, metadata wiring, and the common load/sort/convert/emit
// action around the format's Renderer.
type ExportCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Renderer  export.Renderer
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (ecb *ExportCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      ecb.Name,
		Usage:     ecb.Usage,
		UsageText: ecb.UsageText,
		Metadata: map[string]any{
			"meta": ecb.Meta,
		},
		Flags: NewGlobalFlags(ecb.Name),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return RunExport(ctx, cmd, ecb.Renderer)
		},
	}
}
