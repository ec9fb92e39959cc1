// Copyright (c) 2026 framectl authors.
// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/tframe/framectl/internal/frame"
)

// framesFile is the name Watson gives its frame log inside the data dir.
const framesFile = "frames"

// Store reads frames recorded by the Watson time tracker. The store is
// read-only; framectl never writes it.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir. The directory must exist; an empty
// or absent frames file inside it is fine (a fresh Watson install has no
// frames yet).
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("frame store %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("frame store %s: not a directory", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the resolved store directory.
func (s *Store) Dir() string {
	return s.dir
}

// Frames reads and decodes every frame in the store, in file order.
// Watson serializes each frame as a JSON array:
//
//	[start, stop, "project", "id", ["tag", ...], updated_at]
//
// with start/stop/updated_at as Unix seconds. updated_at is missing in
// logs written by old Watson releases; Stop stands in for it then.
func (s *Store) Frames() ([]frame.Frame, error) {
	path := filepath.Join(s.dir, framesFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("no frames file at %s", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: not valid JSON", path)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%s: expected a top-level array", path)
	}

	//nolint:prealloc
	var frames []frame.Frame
	for i, row := range doc.Array() {
		f, err := decodeFrame(row)
		if err != nil {
			return nil, fmt.Errorf("%s: frame %d: %w", path, i, err)
		}
		frames = append(frames, f)
	}

	log.Debugf("read %d frames from %s", len(frames), path)
	return frames, nil
}

func decodeFrame(row gjson.Result) (frame.Frame, error) {
	if !row.IsArray() {
		return frame.Frame{}, fmt.Errorf("expected an array, got %s", row.Type)
	}

	fields := row.Array()
	if len(fields) < 5 {
		return frame.Frame{}, fmt.Errorf("expected at least 5 fields, got %d", len(fields))
	}

	f := frame.Frame{
		Start:   time.Unix(fields[0].Int(), 0),
		Stop:    time.Unix(fields[1].Int(), 0),
		Project: fields[2].String(),
		ID:      fields[3].String(),
	}

	for _, tag := range fields[4].Array() {
		f.Tags = append(f.Tags, tag.String())
	}

	if len(fields) > 5 {
		f.UpdatedAt = time.Unix(fields[5].Int(), 0)
	} else {
		f.UpdatedAt = f.Stop
	}

	if f.Stop.Before(f.Start) {
		return frame.Frame{}, fmt.Errorf("frame %s: stop precedes start", f.ID)
	}

	return f, nil
}

// DefaultDir is the OS-conventional Watson data directory, probed the
// same way the config file is. Callers overlay WATSON_DIR and --dir on
// top of this.
func DefaultDir() string {
	candidates := []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
	}

	for _, c := range candidates {
		if c != "" {
			return filepath.Join(c, "watson")
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "watson")
	}

	return "."
}
