// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

// Package version holds the framectl release version. It is overridden at
// build time via -ldflags.
package version

var Version = "1.0.0"
