// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/tframe/framectl/internal/config"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	// WatsonDir is the resolved frame store directory. It is decided once
	// during app init (flag beats WATSON_DIR beats the OS default) and
	// passed down so nothing deeper reads the environment.
	WatsonDir   string
	StartingDir string
}
