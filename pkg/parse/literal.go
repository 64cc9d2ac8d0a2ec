package parse

import (
	"errors"
	"strconv"
	"strings"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
)

// VersionTag starts a line declaring the file format version.
const VersionTag = "#Life"

// ParseInt16 parses a decimal literal with an optional sign. Literals outside
// the int16 range fail with COORDINATE_OUT_OF_RANGE at line; any other
// malformation fails with MALFORMED_LINE.
func ParseInt16(literal string, line int) (int16, error) {
	v, err := strconv.ParseInt(literal, 10, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.CoordinateOutOfRange(line)
		}
		return 0, errs.MalformedLine(line)
	}
	return int16(v), nil
}

// CheckVersion validates a version tag line such as "#Life 1.05". The text
// after the tag, trimmed, must equal want exactly.
func CheckVersion(text string, line int, want string) error {
	rest, ok := strings.CutPrefix(text, VersionTag)
	if !ok || strings.TrimSpace(rest) != want {
		return errs.InvalidFileFormat(line)
	}
	return nil
}
