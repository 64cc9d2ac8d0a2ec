// Package pattern provides the descriptor model for Game of Life patterns.
//
// A [Descriptor] holds the rule set of a pattern (the neighbor counts at which
// a live cell survives and a dead cell is born) together with the ordered list
// of live cells. Parsers in [github.com/matzehuels/lifeparse/pkg/parse] build
// descriptors through the append-only builder methods; after a parse returns,
// callers only read them.
//
// # Coordinates
//
// Cells are addressed by [Coord], a pair of signed 16-bit integers. The x axis
// grows to the right and the y axis grows downward, matching the row order of
// the Life 1.05 block format. Every coordinate stored in a descriptor was
// range-checked by the parser that produced it.
//
// # Normalization
//
// [Descriptor.NoNegativeCoords] returns a shifted copy in which no coordinate
// is negative. Relative geometry and rules are preserved:
//
//	d, _ := life105.New(nil).Parse(strings.NewReader("#P -1 -1\n*"))
//	n, err := d.NoNegativeCoords()
//	// n.LiveCells() == []Coord{{X: 0, Y: 0}}
//
// # Concurrency
//
// A Descriptor is not safe for concurrent mutation. Once built, concurrent
// reads are safe since the accessors return copies.
package pattern
