// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

// Package store is the adapter over the Watson data directory. It turns
// the on-disk frame log into []frame.Frame and knows nothing about
// output formats.
package store
