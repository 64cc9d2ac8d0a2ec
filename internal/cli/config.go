package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/lifeparse/pkg/cache"
	errs "github.com/matzehuels/lifeparse/pkg/errors"
	"github.com/matzehuels/lifeparse/pkg/parse"
	"github.com/matzehuels/lifeparse/pkg/pipeline"
)

// Cache backends selectable in the config file.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Config is the on-disk configuration.
//
//	format = "life105"
//	normalize = false
//
//	[cache]
//	backend = "file"     # file | redis | none
//	ttl = "24h"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
type Config struct {
	Format    string       `toml:"format"`
	Normalize bool         `toml:"normalize"`
	Cache     CacheConfig  `toml:"cache"`
	Server    ServerConfig `toml:"server"`
}

// CacheConfig selects and tunes the parse cache.
type CacheConfig struct {
	Backend  string        `toml:"backend"`
	TTL      time.Duration `toml:"ttl"`
	RedisURL string        `toml:"redis_url"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Format: pipeline.DefaultFormat,
		Cache: CacheConfig{
			Backend:  backendFile,
			TTL:      cache.TTLPattern,
			RedisURL: "redis://localhost:6379/0",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the TOML file at path on top of DefaultConfig. A missing
// file is only an error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return DefaultConfig(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidInput, err, "config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errs.New(errs.ErrCodeInvalidInput, "config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks values that TOML decoding cannot.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case backendFile, backendRedis, backendNone:
	default:
		return errs.New(errs.ErrCodeInvalidInput, "cache.backend must be %s, %s or %s, got %q",
			backendFile, backendRedis, backendNone, c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	if _, err := parse.Lookup(c.Format, pipeline.Formats...); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}
