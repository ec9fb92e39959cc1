// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

// framectl is the main package for the framectl command line tool. It
// reads frames recorded by the Watson time tracker and re-serializes
// them as ledger transactions, an iCalendar document or timewarrior
// intervals. It wires the CLI, delegates to internal packages, and
// serves as the entry point.
package main
