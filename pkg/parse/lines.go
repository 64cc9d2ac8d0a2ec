package parse

import (
	"bufio"
	"io"
	"strings"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Lines is a forward-only cursor over the trimmed lines of a stream.
//
//	lines := parse.NewLines(r)
//	for lines.Next() {
//	    handle(lines.Number(), lines.Text())
//	}
//	if err := lines.Err(); err != nil { ... }
type Lines struct {
	scanner *bufio.Scanner
	text    string
	number  int
}

// NewLines returns a cursor positioned before the first line of r.
func NewLines(r io.Reader) *Lines {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Lines{scanner: s}
}

// Next advances to the next line. It returns false at end of input or on a
// read failure; Err distinguishes the two.
func (l *Lines) Next() bool {
	if !l.scanner.Scan() {
		return false
	}
	l.number++
	l.text = strings.TrimSpace(l.scanner.Text())
	return true
}

// Text returns the current line with surrounding whitespace removed.
func (l *Lines) Text() string { return l.text }

// Number returns the 1-based number of the current line.
func (l *Lines) Number() int { return l.number }

// Err returns the read failure that stopped the cursor, as an IO_ERROR.
func (l *Lines) Err() error {
	if err := l.scanner.Err(); err != nil {
		return errs.IOError(err)
	}
	return nil
}
