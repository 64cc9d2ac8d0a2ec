package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/lifeparse/pkg/pattern"
)

// ReadJSON decodes a JSON descriptor from r.
//
// The descriptor is rebuilt through the builder methods, so the result keeps
// the rule and cell order of the input. Rule entries must fit a uint8 and
// coordinates must fit an int16; ReadJSON returns an error otherwise.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*pattern.Descriptor, error) {
	var data descriptor
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	d := pattern.New()
	for _, n := range data.Survival {
		d.AddSurvival(n)
	}
	for _, n := range data.Birth {
		d.AddBirth(n)
	}
	for _, c := range data.Cells {
		d.AddLiveCell(c.X, c.Y)
	}
	for _, c := range data.Comments {
		d.AddComment(c)
	}
	return d, nil
}

// ImportJSON reads a JSON file at path and returns the decoded descriptor.
func ImportJSON(path string) (*pattern.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
