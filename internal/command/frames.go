// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tframe/framectl/internal/frame"
	"github.com/tframe/framectl/internal/meta"
	"github.com/tframe/framectl/internal/output"
)

// framesColumns fixes the key order of the inspection view.
var framesColumns = []string{
	"id", "start", "duration", "project", "task", "tags", "updated",
}

// FramesCommandAction renders the (sorted, filtered) frame set as a
// table, JSON or YAML. This is a TTY inspection view, not an interchange
// format.
func FramesCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	frames, err := LoadFrames(ctx, cmd)
	if err != nil {
		return err
	}

	dataset := framesDataset(frames)

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	return output.Spit(dataset, framesColumns, cmd, w)
}

// framesDataset flattens frames into the row maps the output package
// renders.
func framesDataset(frames []frame.Frame) []map[string]interface{} {
	//nolint:prealloc
	var dataset []map[string]interface{}
	for _, f := range frames {
		h := f.Heading()
		dataset = append(dataset, map[string]interface{}{
			"id":       f.ID,
			"start":    f.Start.Format("2006-01-02 15:04"),
			"duration": f.Duration().Round(time.Second).String(),
			"project":  h.Qualifier(),
			"task":     h.Task,
			"tags":     strings.Join(f.Tags, ","),
			"updated":  humanize.Time(f.UpdatedAt),
		})
	}
	return dataset
}

// FramesCommandBuilder constructs the cli.Command for "frames", wiring
// metadata, global and presentation flags.
func FramesCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "frames",
		Usage:     "list frames from the store",
		UsageText: "framectl frames [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append(NewGlobalFlags("frames"), NewOutputFlags("frames")...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: FramesCommandAction,
	}
}
