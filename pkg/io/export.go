package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/matzehuels/lifeparse/pkg/pattern"
)

type descriptor struct {
	Survival digits          `json:"survival"`
	Birth    digits          `json:"birth"`
	Cells    []pattern.Coord `json:"cells"`
	Comments []string        `json:"comments,omitempty"`
}

// digits is a rule list. encoding/json would write a plain []uint8 as a
// base64 string.
type digits []uint8

func (d digits) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(d))
	for i, v := range d {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

func (d *digits) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	out := make(digits, len(ints))
	for i, v := range ints {
		if v < 0 || v > math.MaxUint8 {
			return fmt.Errorf("rule %d out of range", v)
		}
		out[i] = uint8(v)
	}
	*d = out
	return nil
}

func toJSON(d *pattern.Descriptor) descriptor {
	cells := d.LiveCells()
	if cells == nil {
		cells = []pattern.Coord{}
	}
	return descriptor{
		Survival: d.Survival(),
		Birth:    d.Birth(),
		Cells:    cells,
		Comments: d.Comments(),
	}
}

// WriteJSON encodes d as indented JSON and writes it to w.
func WriteJSON(d *pattern.Descriptor, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes d to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *pattern.Descriptor, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return closeAfter(f, path, WriteJSON(d, f))
}

// closeAfter closes c and returns werr, or the close error if the write
// succeeded.
func closeAfter(c io.Closer, path string, werr error) error {
	if cerr := c.Close(); cerr != nil && werr == nil {
		return fmt.Errorf("close %s: %w", path, cerr)
	}
	return werr
}

// MarshalDescriptor returns the compact JSON encoding of d.
func MarshalDescriptor(d *pattern.Descriptor) ([]byte, error) {
	return json.Marshal(toJSON(d))
}

// UnmarshalDescriptor decodes a descriptor produced by [MarshalDescriptor].
func UnmarshalDescriptor(data []byte) (*pattern.Descriptor, error) {
	return ReadJSON(bytes.NewReader(data))
}
