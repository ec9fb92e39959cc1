// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tframe/framectl/internal/command"
	mylog "github.com/tframe/framectl/internal/log"
	"github.com/tframe/framectl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	mylog.InitLogger()

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No format specified.")
		fmt.Fprintf(os.Stderr, "Supported formats: %s\n", strings.Join(command.Formats(), ", "))
		return 1
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// An unrecognized format token is a usage error, reported with the
	// supported list, not an internal failure.
	if tok := args[1]; !strings.HasPrefix(tok, "-") && !command.HasCommand(app, tok) {
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", tok)
		fmt.Fprintf(os.Stderr, "Supported formats: %s\n", strings.Join(command.Formats(), ", "))
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
