// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tframe/framectl/internal/config"
)

func init() {
	cfg, _ = config.Load()
}

var cfg config.Type

// NewGlobalFlags builds the flags shared by every data command.
// params[0] is the command name, used to namespace config file lookups.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Watson data directory to read frames from",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("WATSON_DIR"),
				yaml.YAML(params[0]+"."+"dir", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("dir", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.StringFlag{
			Name:    "from",
			Aliases: []string{"f"},
			Usage:   "only frames starting on or after this day (YYYY-MM-DD)",
			Validator: func(value string) error {
				return FlagValidators(value, DayValidator)
			},
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "only frames starting on or before this day (YYYY-MM-DD)",
			Validator: func(value string) error {
				return FlagValidators(value, DayValidator)
			},
		},
		&cli.StringFlag{
			Name:    "project",
			Aliases: []string{"p"},
			Usage:   "only frames whose heading project matches",
		},
		&cli.StringFlag{
			Name:  "tag",
			Usage: "only frames carrying this tag",
		},
	}

	return
}

// NewOutputFlags builds the presentation flags used by the frames
// inspection command. The interchange exporters have a fixed grammar and
// take none of these.
func NewOutputFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}
