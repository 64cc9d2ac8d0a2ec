package pattern

import (
	"math"
	"slices"
	"testing"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
)

func TestDescriptorBuilder(t *testing.T) {
	d := New()
	d.AddSurvival(2)
	d.AddSurvival(3)
	d.AddSurvival(3)
	d.AddBirth(3)
	d.AddLiveCell(1, -1)
	d.AddLiveCell(1, -1)

	if got := d.Survival(); !slices.Equal(got, []uint8{2, 3, 3}) {
		t.Errorf("Survival() = %v, want [2 3 3]", got)
	}
	if got := d.Birth(); !slices.Equal(got, []uint8{3}) {
		t.Errorf("Birth() = %v, want [3]", got)
	}
	want := []Coord{{1, -1}, {1, -1}}
	if got := d.LiveCells(); !slices.Equal(got, want) {
		t.Errorf("LiveCells() = %v, want %v", got, want)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestClearRulesKeepsCells(t *testing.T) {
	d := New()
	d.AddSurvival(2)
	d.AddBirth(3)
	d.AddLiveCell(0, 0)

	d.ClearRules()

	if len(d.Survival()) != 0 || len(d.Birth()) != 0 {
		t.Errorf("rules not cleared: survival=%v birth=%v", d.Survival(), d.Birth())
	}
	if d.Len() != 1 {
		t.Errorf("ClearRules dropped live cells: %v", d.LiveCells())
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	d := New()
	d.AddSurvival(2)
	d.AddLiveCell(4, 4)

	d.Survival()[0] = 9
	d.LiveCells()[0] = Coord{X: -1, Y: -1}

	if d.Survival()[0] != 2 {
		t.Error("Survival() exposed internal storage")
	}
	if d.LiveCells()[0] != (Coord{X: 4, Y: 4}) {
		t.Error("LiveCells() exposed internal storage")
	}
}

func TestBounds(t *testing.T) {
	d := New()
	if _, _, ok := d.Bounds(); ok {
		t.Error("Bounds() on empty descriptor should report !ok")
	}

	d.AddLiveCell(1, -2)
	d.AddLiveCell(-1, 0)
	d.AddLiveCell(3, 5)

	lo, hi, ok := d.Bounds()
	if !ok {
		t.Fatal("Bounds() reported !ok")
	}
	if lo != (Coord{X: -1, Y: -2}) || hi != (Coord{X: 3, Y: 5}) {
		t.Errorf("Bounds() = %v, %v, want (-1,-2), (3,5)", lo, hi)
	}
}

func TestNoNegativeCoords(t *testing.T) {
	tests := []struct {
		name  string
		cells []Coord
		want  []Coord
	}{
		{
			name:  "empty",
			cells: nil,
			want:  []Coord{},
		},
		{
			name:  "both axes negative",
			cells: []Coord{{1, -2}, {-1, 0}},
			want:  []Coord{{2, 0}, {0, 2}},
		},
		{
			name:  "already non-negative is identity",
			cells: []Coord{{0, 0}, {1, 0}, {3, 5}},
			want:  []Coord{{0, 0}, {1, 0}, {3, 5}},
		},
		{
			name:  "only x negative",
			cells: []Coord{{-3, 2}, {0, 7}},
			want:  []Coord{{0, 2}, {3, 7}},
		},
		{
			name:  "minimum int16 does not wrap",
			cells: []Coord{{math.MinInt16, 0}, {-1, 0}},
			want:  []Coord{{0, 0}, {math.MaxInt16, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			d.AddSurvival(2)
			d.AddSurvival(3)
			d.AddBirth(3)
			d.AddComment("glider")
			for _, c := range tt.cells {
				d.AddLiveCell(c.X, c.Y)
			}

			got, err := d.NoNegativeCoords()
			if err != nil {
				t.Fatalf("NoNegativeCoords() error: %v", err)
			}
			if !slices.Equal(got.LiveCells(), tt.want) {
				t.Errorf("LiveCells() = %v, want %v", got.LiveCells(), tt.want)
			}
			if !slices.Equal(got.Survival(), d.Survival()) || !slices.Equal(got.Birth(), d.Birth()) {
				t.Errorf("rules changed: %v/%v", got.Survival(), got.Birth())
			}
			if !slices.Equal(got.Comments(), d.Comments()) {
				t.Errorf("Comments() = %v, want %v", got.Comments(), d.Comments())
			}
			for _, c := range got.LiveCells() {
				if c.X < 0 || c.Y < 0 {
					t.Errorf("negative coordinate %v", c)
				}
			}
			// The source must not change.
			if !slices.Equal(d.LiveCells(), tt.cells) && len(tt.cells) > 0 {
				t.Errorf("source mutated: %v", d.LiveCells())
			}
		})
	}
}

func TestNoNegativeCoordsIndependent(t *testing.T) {
	d := New()
	d.AddSurvival(2)
	d.AddLiveCell(-1, -1)

	n, err := d.NoNegativeCoords()
	if err != nil {
		t.Fatal(err)
	}
	n.ClearRules()
	n.AddLiveCell(5, 5)

	if len(d.Survival()) != 1 || d.Len() != 1 {
		t.Error("mutating the normalized copy changed the source")
	}
}

func TestNoNegativeCoordsSpanTooLarge(t *testing.T) {
	d := New()
	d.AddLiveCell(math.MinInt16, 0)
	d.AddLiveCell(math.MaxInt16, 0)

	_, err := d.NoNegativeCoords()
	if !errs.Is(err, errs.ErrCodeCoordinateOutOfRange) {
		t.Errorf("NoNegativeCoords() error = %v, want COORDINATE_OUT_OF_RANGE", err)
	}
}

func TestDefaultRulesFresh(t *testing.T) {
	survival, birth := DefaultRules()
	if !slices.Equal(survival, []uint8{2, 3}) || !slices.Equal(birth, []uint8{3}) {
		t.Fatalf("DefaultRules() = %v/%v, want [2 3]/[3]", survival, birth)
	}

	survival[0], birth[0] = 9, 9
	survival, birth = DefaultRules()
	if survival[0] != 2 || birth[0] != 3 {
		t.Errorf("mutating a result changed later calls: %v/%v", survival, birth)
	}
}
