package parse

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
	"github.com/matzehuels/lifeparse/pkg/pattern"
)

// Parser reads one pattern file format.
//
// Implementations keep all per-parse state local to Parse, so a Parser may be
// reused for any number of sequential calls.
type Parser interface {
	// Parse consumes r line by line and returns the completed descriptor.
	// The first error aborts the parse; no partial descriptor is returned.
	Parse(r io.Reader) (*pattern.Descriptor, error)
}

// Format describes a supported file format.
type Format struct {
	Name    string   // Identifier used by the CLI and the API (e.g., "life105")
	Version string   // Version declared by the #Life tag (e.g., "1.05")
	Aliases []string // Alternative names accepted by Lookup
	// New constructs a parser. A nil logger disables debug output.
	New func(logger *log.Logger) Parser
}

// Matches reports whether name refers to this format.
func (f *Format) Matches(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return name == f.Name || name == f.Version || slices.Contains(f.Aliases, name)
}

// Lookup returns the format matching name among formats.
func Lookup(name string, formats ...*Format) (*Format, error) {
	for _, f := range formats {
		if f.Matches(name) {
			return f, nil
		}
	}
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.Name
	}
	return nil, errs.New(errs.ErrCodeUnsupported, "unknown format %q (available: %s)", name, strings.Join(names, ", "))
}

// Logger returns l, or a logger that discards everything when l is nil.
func Logger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}
