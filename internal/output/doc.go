// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

// Package output renders the frames inspection view in tabular, JSON or
// YAML form. The interchange converters in internal/export do not pass
// through here; they own their grammars end to end.
package output
