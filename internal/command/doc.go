// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

// Package command wires the framectl CLI: one subcommand per export
// format, the frames inspection view, and shell completion. Format
// selection is a compile-time list of command builders, not a lookup
// table.
package command
