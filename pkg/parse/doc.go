// Package parse defines the contract shared by the pattern file parsers.
//
// # Overview
//
// Every supported file format provides a [Parser] that consumes an
// [io.Reader] and returns a [pattern.Descriptor] or the first error found.
// Formats are described by [Format] values, and the caller picks one with
// [Lookup]; there is no content-based format detection. A #Life version tag
// inside a file is validated against the chosen format but never used to
// switch formats.
//
// Supported formats live in subpackages:
//
//   - [life105]: block-oriented Life 1.05 files (#N, #R, #P directives)
//   - [life106]: flat Life 1.06 coordinate lists
//
// # Errors
//
// Parsers fail with *errors.Error values from
// [github.com/matzehuels/lifeparse/pkg/errors]. The codes are IO_ERROR,
// INVALID_FILE_FORMAT, MALFORMED_LINE and COORDINATE_OUT_OF_RANGE; all but
// IO_ERROR carry the 1-based number of the offending line.
//
// # Helpers
//
// [Lines] is the forward-only line cursor used by the parsers. [ParseInt16]
// and [CheckVersion] implement the numeric and version-tag checks common to
// both grammars.
//
// [life105]: github.com/matzehuels/lifeparse/pkg/parse/life105
// [life106]: github.com/matzehuels/lifeparse/pkg/parse/life106
package parse
