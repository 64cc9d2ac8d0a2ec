package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lifeparse/pkg/cache"
	errs "github.com/matzehuels/lifeparse/pkg/errors"
	pkgio "github.com/matzehuels/lifeparse/pkg/io"
	"github.com/matzehuels/lifeparse/pkg/observability"
	"github.com/matzehuels/lifeparse/pkg/parse"
	"github.com/matzehuels/lifeparse/pkg/pattern"
)

const cacheKeyType = "pattern"

// Runner encapsulates parse execution with caching.
//
// The Runner holds no per-parse state, so multiple goroutines can share one
// Runner. Each call constructs its own parser.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Formats []*parse.Format
	TTL     time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		Formats: Formats,
		TTL:     cache.TTLPattern,
	}
}

// Format resolves a format name against the runner's formats.
func (r *Runner) Format(name string) (*parse.Format, error) {
	return parse.Lookup(name, r.Formats...)
}

// Parse parses opts.Input with the selected format, consulting the cache
// first unless opts.Refresh is set.
func (r *Runner) Parse(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	format, err := r.Format(opts.Format)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	key := r.Keyer.PatternKey(format.Name, cache.Hash(opts.Input), cache.PatternKeyOpts{Normalize: opts.Normalize})

	if !opts.Refresh {
		if d, ok := r.lookup(ctx, key, logger); ok {
			return &Result{
				Descriptor: d,
				Format:     format,
				CacheHit:   true,
				Stats:      Stats{Cells: d.Len(), Duration: time.Since(start)},
			}, nil
		}
	}

	observability.Parse().OnParseStart(ctx, format.Name, opts.Source)
	d, err := r.parse(format, opts, logger)
	duration := time.Since(start)
	observability.Parse().OnParseComplete(ctx, format.Name, opts.Source, cellCount(d), duration, err)
	if err != nil {
		return nil, err
	}

	logger.Debug("parsed pattern", "source", opts.Source, "format", format.Name, "cells", d.Len(), "duration", duration)
	r.store(ctx, key, d, logger)

	return &Result{
		Descriptor: d,
		Format:     format,
		Stats:      Stats{Cells: d.Len(), Duration: duration},
	}, nil
}

// ParseReader reads all of rd and parses it.
func (r *Runner) ParseReader(ctx context.Context, rd io.Reader, opts Options) (*Result, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, errs.IOError(err)
	}
	opts.Input = data
	return r.Parse(ctx, opts)
}

// ParseFile reads the file at path and parses it. Source defaults to path.
func (r *Runner) ParseFile(ctx context.Context, path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "no such file: %s", path)
	}
	if err != nil {
		return nil, errs.IOError(err)
	}
	if opts.Source == "" {
		opts.Source = path
	}
	opts.Input = data
	return r.Parse(ctx, opts)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) parse(format *parse.Format, opts Options, logger *log.Logger) (*pattern.Descriptor, error) {
	d, err := format.New(logger).Parse(bytes.NewReader(opts.Input))
	if err != nil {
		return nil, err
	}
	if !opts.Normalize {
		return d, nil
	}
	n, err := d.NoNegativeCoords()
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", opts.Source, err)
	}
	return n, nil
}

// lookup returns a cached descriptor. Cache failures count as misses.
func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (*pattern.Descriptor, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	d, err := pkgio.UnmarshalDescriptor(data)
	if err != nil {
		logger.Warn("discarding unreadable cache entry", "err", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return d, true
}

func (r *Runner) store(ctx context.Context, key string, d *pattern.Descriptor, logger *log.Logger) {
	data, err := pkgio.MarshalDescriptor(d)
	if err != nil {
		logger.Warn("encode cache entry failed", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

func cellCount(d *pattern.Descriptor) int {
	if d == nil {
		return 0
	}
	return d.Len()
}
