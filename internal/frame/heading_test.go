// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT
// no-cloc

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeading(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantTask    string
		wantProject string
		wantSubject string
		wantHas     bool
	}{
		{
			name:        "full form",
			in:          "Write tests@App.Feature",
			wantTask:    "Write tests",
			wantProject: "App",
			wantSubject: "Feature",
			wantHas:     true,
		},
		{
			name:        "no subject",
			in:          "Write tests@App",
			wantTask:    "Write tests",
			wantProject: "App",
			wantHas:     true,
		},
		{
			name:     "no project",
			in:       "Just a title",
			wantTask: "Just a title",
			wantHas:  false,
		},
		{
			name:        "empty task",
			in:          "@App.Feature",
			wantTask:    "",
			wantProject: "App",
			wantSubject: "Feature",
			wantHas:     true,
		},
		{
			name:        "dotted subject",
			in:          "fix@App.Feature.Sub",
			wantTask:    "fix",
			wantProject: "App",
			wantSubject: "Feature.Sub",
			wantHas:     true,
		},
		{
			name:     "empty string",
			in:       "",
			wantTask: "",
			wantHas:  false,
		},
		{
			name:        "only first at-sign splits",
			in:          "mail@ops@App",
			wantTask:    "mail",
			wantProject: "ops@App",
			wantHas:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ParseHeading(tt.in)
			assert.Equal(t, tt.wantTask, h.Task)
			assert.Equal(t, tt.wantProject, h.Project)
			assert.Equal(t, tt.wantSubject, h.Subject)
			assert.Equal(t, tt.wantHas, h.HasProject())
		})
	}
}

func TestHeading_Qualifier(t *testing.T) {
	assert.Equal(t, "App.Feature", ParseHeading("x@App.Feature").Qualifier())
	assert.Equal(t, "App", ParseHeading("x@App").Qualifier())
	assert.Equal(t, "", ParseHeading("no project here").Qualifier())
}

func TestHeading_Account(t *testing.T) {
	assert.Equal(t, "App:Feature", ParseHeading("x@App.Feature").Account())
	assert.Equal(t, "App:Feature:Sub", ParseHeading("x@App.Feature.Sub").Account())
	assert.Equal(t, "App", ParseHeading("x@App").Account())
	assert.Equal(t, "", ParseHeading("bare task").Account())
}
