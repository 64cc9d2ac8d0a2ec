// Package pipeline runs pattern parses with caching, normalization and
// observability hooks.
//
// This package is shared by the CLI and the HTTP API so both entry points
// resolve formats, key caches and report events the same way.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	defer runner.Close()
//
//	res, err := runner.ParseFile(ctx, "glider.lif", pipeline.Options{
//	    Format:    "life105",
//	    Normalize: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Descriptor.LiveCells())
//
// Parse errors keep their *errors.Error type, so callers can read the code
// and line with errors.GetCode and errors.LineOf.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
	"github.com/matzehuels/lifeparse/pkg/parse"
	"github.com/matzehuels/lifeparse/pkg/parse/life105"
	"github.com/matzehuels/lifeparse/pkg/parse/life106"
	"github.com/matzehuels/lifeparse/pkg/pattern"
)

// DefaultFormat is used when Options.Format is empty.
const DefaultFormat = "life105"

// Formats lists the supported file formats.
var Formats = []*parse.Format{
	life105.Format,
	life106.Format,
}

// Options configures a single parse.
type Options struct {
	Format    string      // Format name, version or alias (DefaultFormat if empty)
	Source    string      // Label for logs and hooks, typically the file path
	Input     []byte      // Pattern file contents
	Normalize bool        // Shift the result so no coordinate is negative
	Refresh   bool        // Skip the cache lookup (the result is still stored)
	Logger    *log.Logger // Overrides the runner logger
}

// Validate fills in defaults and rejects unusable options.
func (o *Options) Validate() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Source == "" {
		o.Source = "<input>"
	}
	if o.Input == nil {
		return errs.New(errs.ErrCodeInvalidInput, "no input")
	}
	return nil
}

// Result is the outcome of a successful parse.
type Result struct {
	Descriptor *pattern.Descriptor
	Format     *parse.Format
	CacheHit   bool
	Stats      Stats
}

// Stats summarizes a parse.
type Stats struct {
	Cells    int
	Duration time.Duration
}
