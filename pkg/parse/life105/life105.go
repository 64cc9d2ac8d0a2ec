// Package life105 parses patterns in the Life 1.05 block format.
//
// A Life 1.05 file is a sequence of directive lines and pattern rows:
//
//	#Life 1.05        optional, validated when present
//	#D Glider         description, kept as a comment before the first block
//	#N                Conway's rules: survival 2,3 birth 3
//	#R 23/3           explicit rules: survival digits / birth digits
//	#P -1 -1          start a block whose top-left cell is (-1,-1)
//	.*.               pattern rows: '*' live, '.' dead
//	..*
//	***
//
// Rows are only meaningful after a #P directive; lines before the first block
// that are not directives are ignored.
package life105

import (
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
	"github.com/matzehuels/lifeparse/pkg/parse"
	"github.com/matzehuels/lifeparse/pkg/pattern"
)

// Version is the value expected after the #Life tag.
const Version = "1.05"

// Directive prefixes.
const (
	rulesTag       = "#R"
	defaultRuleTag = "#N"
	offsetTag      = "#P"
)

var (
	rulesRE  = regexp.MustCompile(`^#R\s*(\d+)\s*/\s*(\d+)\s*$`)
	offsetRE = regexp.MustCompile(`^#P\s*([+-]?\d+)\s+([+-]?\d+)\s*$`)
)

// Format registers the Life 1.05 parser.
var Format = &parse.Format{
	Name:    "life105",
	Version: Version,
	Aliases: []string{"105", "life1.05", "life-1.05"},
	New:     func(logger *log.Logger) parse.Parser { return New(logger) },
}

// Parser reads Life 1.05 files.
type Parser struct {
	logger *log.Logger
}

// New returns a Life 1.05 parser. A nil logger disables debug output.
func New(logger *log.Logger) *Parser {
	return &Parser{logger: parse.Logger(logger)}
}

// Parse implements [parse.Parser].
func (p *Parser) Parse(r io.Reader) (*pattern.Descriptor, error) {
	s := &state{desc: pattern.New(), logger: p.logger}

	lines := parse.NewLines(r)
	for lines.Next() {
		if err := s.handle(lines.Number(), lines.Text()); err != nil {
			return nil, err
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	return s.desc, nil
}

// state is the per-call interpreter state.
type state struct {
	desc   *pattern.Descriptor
	logger *log.Logger

	inBlock bool
	ox, oy  int16 // top-left cell of the current block
	row     int64 // zero-based row within the current block
}

func (s *state) handle(num int, text string) error {
	switch {
	case strings.HasPrefix(text, parse.VersionTag):
		return parse.CheckVersion(text, num, Version)
	case strings.HasPrefix(text, rulesTag):
		return s.rules(num, text)
	case strings.HasPrefix(text, defaultRuleTag):
		s.desc.ClearRules()
		survival, birth := pattern.DefaultRules()
		for _, n := range survival {
			s.desc.AddSurvival(n)
		}
		for _, n := range birth {
			s.desc.AddBirth(n)
		}
		return nil
	case strings.HasPrefix(text, offsetTag):
		return s.offset(num, text)
	case s.inBlock:
		return s.pattern(num, text)
	}

	if c, ok := description(text); ok {
		s.desc.AddComment(c)
		return nil
	}
	s.logger.Debug("ignoring line outside block", "line", num)
	return nil
}

// rules handles "#R <survival digits>/<birth digits>".
func (s *state) rules(num int, text string) error {
	m := rulesRE.FindStringSubmatch(text)
	if m == nil {
		return errs.MalformedLine(num)
	}
	s.desc.ClearRules()
	for _, c := range m[1] {
		s.desc.AddSurvival(uint8(c - '0'))
	}
	for _, c := range m[2] {
		s.desc.AddBirth(uint8(c - '0'))
	}
	return nil
}

// offset handles "#P <x> <y>" and starts a new block.
func (s *state) offset(num int, text string) error {
	m := offsetRE.FindStringSubmatch(text)
	if m == nil {
		return errs.MalformedLine(num)
	}
	x, err := parse.ParseInt16(m[1], num)
	if err != nil {
		return err
	}
	y, err := parse.ParseInt16(m[2], num)
	if err != nil {
		return err
	}
	s.inBlock = true
	s.ox, s.oy, s.row = x, y, 0
	s.logger.Debug("block", "line", num, "x", x, "y", y)
	return nil
}

// pattern decodes one row of the current block.
func (s *state) pattern(num int, text string) error {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.':
		case '*':
			x, okX := narrow(int64(i) + int64(s.ox))
			y, okY := narrow(s.row + int64(s.oy))
			if !okX || !okY {
				return errs.CoordinateOutOfRange(num)
			}
			s.desc.AddLiveCell(x, y)
		default:
			return errs.MalformedLine(num)
		}
	}
	s.row++
	return nil
}

// description extracts the text of a #D or #C line.
func description(text string) (string, bool) {
	for _, tag := range []string{"#D", "#C"} {
		if rest, ok := strings.CutPrefix(text, tag); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

func narrow(v int64) (int16, bool) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, false
	}
	return int16(v), true
}
