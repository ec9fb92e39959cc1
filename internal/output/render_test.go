// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT
// no-cloc

package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runSpit(
	t *testing.T,
	args []string,
	dataset []map[string]interface{},
	columns []string) string {

	t.Helper()

	var buf bytes.Buffer
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.BoolFlag{Name: "titles"},
			&cli.BoolFlag{Name: "color"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return Spit(dataset, columns, c, &buf)
		},
	}

	err := cmd.Run(context.Background(), append([]string{"test"}, args...))
	require.NoError(t, err)
	return buf.String()
}

func testDataset() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": "abc", "project": "App", "duration": "30m0s"},
		{"id": "def", "project": "Ops", "duration": "1h0m0s"},
	}
}

func TestSpit_JSON(t *testing.T) {
	out := runSpit(t, []string{"--output", "json"}, testDataset(),
		[]string{"id", "project", "duration"})

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "abc", decoded[0]["id"])
	assert.Equal(t, "Ops", decoded[1]["project"])
}

func TestSpit_YAML(t *testing.T) {
	out := runSpit(t, []string{"--output", "yaml"}, testDataset(),
		[]string{"id", "project", "duration"})

	assert.Contains(t, out, "id: abc")
	assert.Contains(t, out, "project: Ops")
}

func TestSpit_Table(t *testing.T) {
	out := runSpit(t, nil, testDataset(), []string{"id", "project", "duration"})

	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "1h0m0s")
	// No titles without --titles.
	assert.NotContains(t, out, "duration")
}

func TestSpit_TableTitles(t *testing.T) {
	out := runSpit(t, []string{"--titles"}, testDataset(),
		[]string{"id", "project", "duration"})

	assert.Contains(t, out, "duration")
}

func TestSpit_EmptyDataset(t *testing.T) {
	out := runSpit(t, nil, nil, []string{"id"})
	assert.Empty(t, out)
}

func TestInterfaceToString(t *testing.T) {
	assert.Equal(t, "x", InterfaceToString("x"))
	assert.Equal(t, "42", InterfaceToString(42))
	assert.Equal(t, "42", InterfaceToString(42.4))
	assert.Equal(t, "true", InterfaceToString(true))
	assert.Equal(t, "-", InterfaceToString(nil, "-"))
	assert.Equal(t, "", InterfaceToString(""))
	assert.Equal(t, `["a","b"]`, InterfaceToString([]string{"a", "b"}))
}
