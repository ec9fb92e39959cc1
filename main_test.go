// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT
// no-cloc

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tframe/framectl/internal/version"
)

// capture runs fn with stdout and stderr redirected to pipes and returns
// the exit code along with whatever was written to each stream.
func capture(t *testing.T, fn func() int) (code int, stdout, stderr string) {
	t.Helper()

	oldOut, oldErr := os.Stdout, os.Stderr
	rOut, wOut, err := os.Pipe()
	require.NoError(t, err)
	rErr, wErr, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout, os.Stderr = wOut, wErr
	defer func() { os.Stdout, os.Stderr = oldOut, oldErr }()

	code = fn()

	require.NoError(t, wOut.Close())
	require.NoError(t, wErr.Close())

	outBytes, err := io.ReadAll(rOut)
	require.NoError(t, err)
	errBytes, err := io.ReadAll(rErr)
	require.NoError(t, err)

	return code, string(outBytes), string(errBytes)
}

func TestRealMain_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		code, stdout, _ := capture(t, func() int {
			return realMain([]string{"framectl", flag})
		})
		assert.Equal(t, 0, code)
		assert.Equal(t, version.Version+"\n", stdout)
	}
}

func TestRealMain_Help(t *testing.T) {
	code, stdout, _ := capture(t, func() int {
		return realMain([]string{"framectl", "--help"})
	})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, version.Version)
	assert.Contains(t, stdout, "ledger")
	assert.Contains(t, stdout, "ical")
	assert.Contains(t, stdout, "timew")
}

func TestRealMain_NoArgs(t *testing.T) {
	code, _, stderr := capture(t, func() int {
		return realMain([]string{"framectl"})
	})
	assert.Equal(t, 1, code)
	for _, format := range []string{"ical", "ledger", "timew"} {
		assert.Contains(t, stderr, format)
	}
}

func TestRealMain_UnknownFormat(t *testing.T) {
	code, _, stderr := capture(t, func() int {
		return realMain([]string{"framectl", "bogus"})
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "bogus")
	for _, format := range []string{"ical", "ledger", "timew"} {
		assert.Contains(t, stderr, format)
	}
}

func TestRealMain_LedgerEndToEnd(t *testing.T) {
	dir := t.TempDir()
	frames := `[[1464768000, 1464769800, "Write tests@App.Feature", "abc", ["dev"], 1464769900]]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "frames"), []byte(frames), 0o644))
	t.Setenv("WATSON_DIR", dir)

	code, stdout, _ := capture(t, func() int {
		return realMain([]string{"framectl", "ledger"})
	})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "(abc)  Write tests")
	assert.Contains(t, stdout, "(App:Feature) \t1800s")
	assert.True(t, strings.HasSuffix(stdout, "\n\n"),
		"each transaction is terminated by a blank line")
}

func TestRealMain_StoreMissing(t *testing.T) {
	t.Setenv("WATSON_DIR", filepath.Join(t.TempDir(), "nope"))

	code, _, stderr := capture(t, func() int {
		return realMain([]string{"framectl", "ledger"})
	})
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, stderr)
}
