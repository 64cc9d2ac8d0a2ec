// Package life106 parses patterns in the Life 1.06 coordinate-list format.
//
// A Life 1.06 file lists one live cell per line as an "x y" pair of absolute
// coordinates:
//
//	#Life 1.06
//	# comments start with '#'
//	0 0
//	1 0
//	-3 5
//
// The format carries no rule information, so parsed descriptors have empty
// survival and birth lists.
package life106

import (
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
	"github.com/matzehuels/lifeparse/pkg/parse"
	"github.com/matzehuels/lifeparse/pkg/pattern"
)

// Version is the value expected after the #Life tag.
const Version = "1.06"

var cellRE = regexp.MustCompile(`^([+-]?\d+)\s+([+-]?\d+)$`)

// Format registers the Life 1.06 parser.
var Format = &parse.Format{
	Name:    "life106",
	Version: Version,
	Aliases: []string{"106", "life1.06", "life-1.06"},
	New:     func(logger *log.Logger) parse.Parser { return New(logger) },
}

// Parser reads Life 1.06 files.
type Parser struct {
	logger *log.Logger
}

// New returns a Life 1.06 parser. A nil logger disables debug output.
func New(logger *log.Logger) *Parser {
	return &Parser{logger: parse.Logger(logger)}
}

// Parse implements [parse.Parser].
func (p *Parser) Parse(r io.Reader) (*pattern.Descriptor, error) {
	d := pattern.New()

	lines := parse.NewLines(r)
	for lines.Next() {
		num, text := lines.Number(), lines.Text()

		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, parse.VersionTag):
			if err := parse.CheckVersion(text, num, Version); err != nil {
				return nil, err
			}
		case strings.HasPrefix(text, "#"):
			d.AddComment(strings.TrimSpace(text[1:]))
		default:
			m := cellRE.FindStringSubmatch(text)
			if m == nil {
				return nil, errs.MalformedLine(num)
			}
			x, err := parse.ParseInt16(m[1], num)
			if err != nil {
				return nil, err
			}
			y, err := parse.ParseInt16(m[2], num)
			if err != nil {
				return nil, err
			}
			d.AddLiveCell(x, y)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug("parsed cell list", "lines", lines.Number(), "cells", d.Len())
	return d, nil
}
