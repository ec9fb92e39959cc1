// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/tframe/framectl/internal/export"
	"github.com/tframe/framectl/internal/meta"
)

// LedgerCommandBuilder constructs the cli.Command for "ledger". Every
// frame must carry an @project part; the converter reports the first one
// that doesn't.
func LedgerCommandBuilder(m meta.Meta) *cli.Command {
	ecb := &ExportCommandBuilder{
		Name:      "ledger",
		Usage:     "export frames as ledger transactions",
		UsageText: "framectl ledger [options]",
		Renderer:  export.Ledger,
		Meta:      m,
	}
	return ecb.Build()
}
