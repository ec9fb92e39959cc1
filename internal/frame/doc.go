// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

// Package frame holds the Watson frame model, the composite heading
// parser, the start-time sorter and the set filters shared by all
// commands.
package frame
