// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tframe/framectl/internal/config"
	"github.com/tframe/framectl/internal/meta"
	"github.com/tframe/framectl/internal/store"
	"github.com/tframe/framectl/internal/version"
)

// Formats lists the supported export format tokens, in the order they
// are reported in usage errors.
func Formats() []string {
	return []string{"ical", "ledger", "timew"}
}

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the framectl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if
	// it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load()
	config.Config.Namespace = ns

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	// Resolve the store directory once, here: WATSON_DIR beats the config
	// file beats the OS default. A --dir flag can still override per
	// invocation, but nothing deeper than the command actions reads the
	// environment.
	if dir := os.Getenv("WATSON_DIR"); dir != "" {
		m.WatsonDir = dir
	} else if dir, err := config.GetString("dir"); err == nil && dir != "" {
		m.WatsonDir = dir
	} else {
		m.WatsonDir = store.DefaultDir()
	}

	app := &cli.Command{
		Name:    "framectl",
		Usage:   "export Watson time-tracking frames",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "framectl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		FramesCommandBuilder(m),
		ICalCommandBuilder(m),
		LedgerCommandBuilder(m),
		TimewCommandBuilder(m),
		CompletionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// HasCommand reports whether token names a subcommand of app.
func HasCommand(app *cli.Command, token string) bool {
	for _, cmd := range app.Commands {
		if cmd.Name == token {
			return true
		}
		for _, alias := range cmd.Aliases {
			if alias == token {
				return true
			}
		}
	}
	return false
}
