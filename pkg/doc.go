// Package pkg provides the core libraries for lifeparse.
//
// # Overview
//
// Lifeparse reads Game of Life pattern files written in the Life 1.05 block
// format or the Life 1.06 coordinate-list format and produces a descriptor:
// the rule set (survival and birth neighbor counts) plus the ordered list of
// live cells. The pkg directory is organized as:
//
//  1. [pattern] - The descriptor model and coordinate normalization
//  2. [parse] - The parser contract, format registry and shared line grammar
//  3. [parse/life105], [parse/life106] - The two format parsers
//  4. [errors] - Structured, line-numbered parse errors
//  5. [pipeline] - Cached parsing shared by the CLI and the HTTP API
//
// Supporting packages: [io] (descriptor JSON), [cache] (file, Redis and null
// caches), [observability] (event hooks) and [buildinfo].
//
// # Data Flow
//
//	pattern file bytes
//	         ↓
//	    [parse] Lookup(format) → Parser
//	         ↓
//	    [pattern] Descriptor (optionally NoNegativeCoords)
//	         ↓
//	    [io] JSON
//
// # Quick Start
//
//	f, _ := os.Open("glider.lif")
//	defer f.Close()
//
//	d, err := life105.New(nil).Parse(f)
//	if err != nil {
//	    line, _ := errors.LineOf(err)
//	    log.Fatalf("%s at line %d", errors.GetCode(err), line)
//	}
//	d, _ = d.NoNegativeCoords()
//	fmt.Println(d.LiveCells())
//
// With caching and hooks:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.ParseFile(ctx, "cells.lif", pipeline.Options{Format: "life106"})
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/parse/...              # Parsers only
//	go test -run Example ./pkg/...       # Examples only
//
// [pattern]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/pattern
// [parse]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/parse
// [parse/life105]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/parse/life105
// [parse/life106]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/parse/life106
// [errors]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/errors
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/lifeparse/pkg/buildinfo
package pkg
