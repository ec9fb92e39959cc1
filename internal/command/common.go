// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tframe/framectl/internal/export"
	"github.com/tframe/framectl/internal/frame"
	"github.com/tframe/framectl/internal/meta"
	"github.com/tframe/framectl/internal/store"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ParseBound parses a --from/--to value. A bare day is interpreted in
// local time; dayOnly tells the caller whether an exclusive upper bound
// needs to be pushed to the next midnight.
func ParseBound(s string) (t time.Time, dayOnly bool, err error) {
	if t, err = time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true, nil
	}
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC3339", s)
}

// BuildFilter assembles a frame.Filter from the global flags. --to names
// a day inclusively, so a day-only value becomes an exclusive bound at
// the following midnight.
func BuildFilter(cmd *cli.Command) (frame.Filter, error) {
	var flt frame.Filter

	if v := cmd.String("from"); v != "" {
		t, _, err := ParseBound(v)
		if err != nil {
			return flt, err
		}
		flt.From = t
	}

	if v := cmd.String("to"); v != "" {
		t, dayOnly, err := ParseBound(v)
		if err != nil {
			return flt, err
		}
		if dayOnly {
			t = t.AddDate(0, 0, 1)
		}
		flt.To = t
	}

	flt.Project = cmd.String("project")
	flt.Tag = cmd.String("tag")

	return flt, nil
}

// LoadFrames opens the frame store, reads every frame, applies the flag
// filters and returns the result sorted by start time. The store
// directory is the --dir flag when given, else the one resolved at app
// init.
func LoadFrames(ctx context.Context, cmd *cli.Command) ([]frame.Frame, error) {
	m := GetMeta(cmd)

	dir := cmd.String("dir")
	if dir == "" {
		dir = m.WatsonDir
	}
	log.Debugf("frame store dir: %s", dir)

	s, err := store.Open(dir)
	if err != nil {
		return nil, err
	}

	frames, err := s.Frames()
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d frames", len(frames))

	flt, err := BuildFilter(cmd)
	if err != nil {
		return nil, err
	}
	frames = flt.Apply(frames)

	return frame.SortByStart(frames), nil
}

// RunExport is the shared action for the three export commands: load,
// sort, convert, emit. The converter renders into a buffer first so a
// data-shape error never leaves a partial document on stdout.
func RunExport(ctx context.Context, cmd *cli.Command, render export.Renderer) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	frames, err := LoadFrames(ctx, cmd)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render(frames, &buf); err != nil {
		return err
	}

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	_, err = io.Copy(w, &buf)
	return err
}
