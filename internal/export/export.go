// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package export

import (
	"io"

	"github.com/tframe/framectl/internal/frame"
)

// Renderer is the converter signature the CLI dispatches on. Input
// frames are expected to be sorted by start time; the renderer writes a
// complete document or returns an error without partial output concerns
// (callers buffer).
type Renderer func(frames []frame.Frame, w io.Writer) error
