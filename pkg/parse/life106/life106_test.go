package life106

import (
	"errors"
	"io"
	"os"
	"slices"
	"strings"
	"testing"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
	"github.com/matzehuels/lifeparse/pkg/pattern"
)

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []pattern.Coord
	}{
		{
			name:  "with version tag",
			input: "#Life 1.06\n0 0\n1 0\n3 5",
			want:  []pattern.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 5}},
		},
		{
			name:  "signed coordinates",
			input: "-1 +2\n-32768 32767",
			want:  []pattern.Coord{{X: -1, Y: 2}, {X: -32768, Y: 32767}},
		},
		{
			name:  "blank and comment lines ignored",
			input: "\n# a comment\n  \n#N not a directive here\n2\t3\n",
			want:  []pattern.Coord{{X: 2, Y: 3}},
		},
		{
			name:  "duplicates kept in order",
			input: "1 1\n0 0\n1 1",
			want:  []pattern.Coord{{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}},
		},
		{
			name:  "empty input",
			input: "",
			want:  []pattern.Coord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(nil).Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := d.LiveCells(); !slices.Equal(got, tt.want) {
				t.Errorf("LiveCells() = %v, want %v", got, tt.want)
			}
			if len(d.Survival()) != 0 || len(d.Birth()) != 0 {
				t.Errorf("unexpected rules: %v/%v", d.Survival(), d.Birth())
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errs.Code
		line  int
	}{
		{"not a coordinate pair", "0 0\n\nYo Yo!", errs.ErrCodeMalformedLine, 3},
		{"single number", "12", errs.ErrCodeMalformedLine, 1},
		{"three numbers", "1 2 3", errs.ErrCodeMalformedLine, 1},
		{"x too big", "32768 0", errs.ErrCodeCoordinateOutOfRange, 1},
		{"y too small", "0 0\n0 -32769", errs.ErrCodeCoordinateOutOfRange, 2},
		{"huge literal", "99999999999999999999999 0", errs.ErrCodeCoordinateOutOfRange, 1},
		{"wrong version", "#Life 1.05\n#P -1 -1\n.*.", errs.ErrCodeInvalidFileFormat, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(nil).Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Parse succeeded with %v, want %s", d.LiveCells(), tt.code)
			}
			if d != nil {
				t.Error("Parse returned a partial descriptor")
			}
			if code := errs.GetCode(err); code != tt.code {
				t.Errorf("code = %s, want %s (err: %v)", code, tt.code, err)
			}
			if line, _ := errs.LineOf(err); line != tt.line {
				t.Errorf("line = %d, want %d", line, tt.line)
			}
		})
	}
}

func TestParse_IOError(t *testing.T) {
	_, err := New(nil).Parse(errReader{err: os.ErrNotExist})
	if !errs.Is(err, errs.ErrCodeIO) {
		t.Fatalf("err = %v, want IO_ERROR", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want cause os.ErrNotExist", err)
	}
}

func TestParse_IOErrorAfterLines(t *testing.T) {
	r := io.MultiReader(strings.NewReader("0 0\n1 1\n"), errReader{err: io.ErrUnexpectedEOF})
	d, err := New(nil).Parse(r)
	if d != nil || !errs.Is(err, errs.ErrCodeIO) {
		t.Errorf("Parse() = %v, %v, want nil, IO_ERROR", d, err)
	}
}

func TestParse_File(t *testing.T) {
	f, err := os.Open("testdata/cells.lif")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	d, err := New(nil).Parse(f)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []pattern.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 5}}
	if got := d.LiveCells(); !slices.Equal(got, want) {
		t.Errorf("LiveCells() = %v, want %v", got, want)
	}
	if got := d.Comments(); !slices.Equal(got, []string{"Three cells"}) {
		t.Errorf("Comments() = %q", got)
	}
}
