// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT
// no-cloc

package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mkFrame(id string, start time.Time, dur time.Duration) Frame {
	return Frame{
		ID:        id,
		Start:     start,
		Stop:      start.Add(dur),
		UpdatedAt: start.Add(dur),
		Project:   "task@proj",
	}
}

func TestSortByStart(t *testing.T) {
	base := time.Date(2016, 6, 1, 10, 0, 0, 0, time.UTC)

	frames := []Frame{
		mkFrame("c", base.Add(2*time.Hour), time.Hour),
		mkFrame("a", base, time.Hour),
		mkFrame("b", base.Add(time.Hour), time.Hour),
	}

	sorted := SortByStart(frames)

	assert.Len(t, sorted, len(frames))
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{sorted[0].ID, sorted[1].ID, sorted[2].ID})

	// Input order is untouched.
	assert.Equal(t, "c", frames[0].ID)

	// Same multiset of elements.
	assert.ElementsMatch(t, frames, sorted)
}

func TestSortByStart_StableOnTies(t *testing.T) {
	base := time.Date(2016, 6, 1, 10, 0, 0, 0, time.UTC)

	frames := []Frame{
		mkFrame("first", base, time.Hour),
		mkFrame("second", base, 2*time.Hour),
		mkFrame("third", base, 30*time.Minute),
	}

	sorted := SortByStart(frames)
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
	assert.Equal(t, "third", sorted[2].ID)
}

func TestSortByStart_Empty(t *testing.T) {
	assert.Empty(t, SortByStart(nil))
}

func TestFilter_Apply(t *testing.T) {
	base := time.Date(2016, 6, 1, 10, 0, 0, 0, time.UTC)

	frames := []Frame{
		{ID: "a", Start: base, Stop: base.Add(time.Hour),
			Project: "write@App.Feature", Tags: []string{"dev"}},
		{ID: "b", Start: base.AddDate(0, 0, 1), Stop: base.AddDate(0, 0, 1).Add(time.Hour),
			Project: "review@Ops", Tags: []string{"chore", "dev"}},
		{ID: "c", Start: base.AddDate(0, 0, 2), Stop: base.AddDate(0, 0, 2).Add(time.Hour),
			Project: "standalone task"},
	}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{
			name:    "zero filter keeps everything",
			filter:  Filter{},
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:    "from bound is inclusive",
			filter:  Filter{From: base.AddDate(0, 0, 1)},
			wantIDs: []string{"b", "c"},
		},
		{
			name:    "to bound is exclusive",
			filter:  Filter{To: base.AddDate(0, 0, 1)},
			wantIDs: []string{"a"},
		},
		{
			name:    "range",
			filter:  Filter{From: base.AddDate(0, 0, 1), To: base.AddDate(0, 0, 2)},
			wantIDs: []string{"b"},
		},
		{
			name:    "project",
			filter:  Filter{Project: "Ops"},
			wantIDs: []string{"b"},
		},
		{
			name:    "tag",
			filter:  Filter{Tag: "dev"},
			wantIDs: []string{"a", "b"},
		},
		{
			name:    "project and tag",
			filter:  Filter{Project: "App", Tag: "dev"},
			wantIDs: []string{"a"},
		},
		{
			name:    "no match",
			filter:  Filter{Project: "Nope"},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(frames)
			var ids []string
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
