package parse

import (
	"io"
	"strings"
	"testing"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
)

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestLines(t *testing.T) {
	lines := NewLines(strings.NewReader("  first \n\n\tthird\r\nlast"))

	var got []string
	var nums []int
	for lines.Next() {
		got = append(got, lines.Text())
		nums = append(nums, lines.Number())
	}
	if err := lines.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	want := []string{"first", "", "third", "last"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", got, want)
	}
	for i, n := range nums {
		if n != i+1 {
			t.Errorf("line %d numbered %d", i+1, n)
		}
	}
}

func TestLinesReadError(t *testing.T) {
	lines := NewLines(errReader{err: io.ErrClosedPipe})
	if lines.Next() {
		t.Fatal("Next() = true on failing reader")
	}
	if err := lines.Err(); !errs.Is(err, errs.ErrCodeIO) {
		t.Errorf("Err() = %v, want IO_ERROR", err)
	}
}

func TestLinesTooLong(t *testing.T) {
	long := strings.Repeat(".", maxLineSize+1)
	lines := NewLines(strings.NewReader(long))
	for lines.Next() {
	}
	if err := lines.Err(); !errs.Is(err, errs.ErrCodeIO) {
		t.Errorf("Err() = %v, want IO_ERROR", err)
	}
}
