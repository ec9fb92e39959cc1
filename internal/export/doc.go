// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

// Package export holds the one-way converters from an ordered frame
// sequence to the three interchange formats: ledger transactions, an
// iCalendar subset, and timewarrior inc lines. Converters share no state
// and write a complete document to the given writer.
package export
