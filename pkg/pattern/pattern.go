package pattern

import (
	"fmt"
	"math"
	"slices"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
)

// DefaultRules returns Conway's rules (survival 2,3 birth 3), installed by
// the Life 1.05 #N directive. Each call returns fresh slices.
func DefaultRules() (survival, birth []uint8) {
	return []uint8{2, 3}, []uint8{3}
}

// Coord is the position of a live cell.
type Coord struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Descriptor is the parsed form of a pattern file: a rule set plus the live
// cells in the order they were discovered. Duplicates are kept as found.
//
// The zero value is an empty descriptor ready for use.
type Descriptor struct {
	survival  []uint8
	birth     []uint8
	liveCells []Coord
	comments  []string
}

// New returns an empty descriptor.
func New() *Descriptor {
	return &Descriptor{}
}

// AddSurvival appends a survival neighbor count.
func (d *Descriptor) AddSurvival(n uint8) { d.survival = append(d.survival, n) }

// AddBirth appends a birth neighbor count.
func (d *Descriptor) AddBirth(n uint8) { d.birth = append(d.birth, n) }

// ClearRules drops all survival and birth entries. Live cells are untouched.
func (d *Descriptor) ClearRules() {
	d.survival = d.survival[:0]
	d.birth = d.birth[:0]
}

// AddLiveCell appends a live cell. The caller must have range-checked x and y.
func (d *Descriptor) AddLiveCell(x, y int16) {
	d.liveCells = append(d.liveCells, Coord{X: x, Y: y})
}

// AddComment appends a line of description text.
func (d *Descriptor) AddComment(s string) { d.comments = append(d.comments, s) }

// Survival returns the survival counts in declaration order.
func (d *Descriptor) Survival() []uint8 { return slices.Clone(d.survival) }

// Birth returns the birth counts in declaration order.
func (d *Descriptor) Birth() []uint8 { return slices.Clone(d.birth) }

// LiveCells returns the live cells in discovery order.
func (d *Descriptor) LiveCells() []Coord { return slices.Clone(d.liveCells) }

// Comments returns the description lines found in the source.
func (d *Descriptor) Comments() []string { return slices.Clone(d.comments) }

// Len returns the number of live cells.
func (d *Descriptor) Len() int { return len(d.liveCells) }

// Bounds returns the smallest box containing every live cell.
// ok is false when the descriptor has no live cells.
func (d *Descriptor) Bounds() (lo, hi Coord, ok bool) {
	if len(d.liveCells) == 0 {
		return Coord{}, Coord{}, false
	}
	lo, hi = d.liveCells[0], d.liveCells[0]
	for _, c := range d.liveCells[1:] {
		lo.X, hi.X = min(lo.X, c.X), max(hi.X, c.X)
		lo.Y, hi.Y = min(lo.Y, c.Y), max(hi.Y, c.Y)
	}
	return lo, hi, true
}

// NoNegativeCoords returns an independent copy shifted so that no coordinate
// is negative. Axes that are already non-negative are not shifted. Rules and
// comments are copied verbatim and the cell order is preserved.
//
// It fails with COORDINATE_OUT_OF_RANGE when the shifted pattern does not fit
// the int16 domain, which happens only for patterns wider or taller than
// math.MaxInt16 cells.
func (d *Descriptor) NoNegativeCoords() (*Descriptor, error) {
	var minX, minY int32
	for _, c := range d.liveCells {
		minX = min(minX, int32(c.X))
		minY = min(minY, int32(c.Y))
	}

	ret := &Descriptor{
		survival:  slices.Clone(d.survival),
		birth:     slices.Clone(d.birth),
		liveCells: make([]Coord, 0, len(d.liveCells)),
		comments:  slices.Clone(d.comments),
	}
	for _, c := range d.liveCells {
		x := int32(c.X) - minX
		y := int32(c.Y) - minY
		if x > math.MaxInt16 || y > math.MaxInt16 {
			return nil, errs.New(errs.ErrCodeCoordinateOutOfRange,
				"pattern does not fit the coordinate range after shifting %s", c)
		}
		ret.liveCells = append(ret.liveCells, Coord{X: int16(x), Y: int16(y)})
	}
	return ret, nil
}
