// Package cli implements the lifeparse command-line interface.
//
// This package provides commands for parsing Game of Life pattern files into
// JSON descriptors, serving the same parsers over HTTP, and managing the
// parse cache. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - parse: Parse a Life 1.05 or Life 1.06 file and print its descriptor
//   - serve: Run the HTTP API
//   - formats: List the supported formats
//   - cache: Manage the parse cache
//
// # Configuration
//
// Defaults are read from $XDG_CONFIG_HOME/lifeparse/config.toml (or the file
// named by --config). Flags always win over the config file.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lifeparse/pkg/buildinfo"
	"github.com/matzehuels/lifeparse/pkg/cache"
	"github.com/matzehuels/lifeparse/pkg/observability"
	"github.com/matzehuels/lifeparse/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "lifeparse"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
}

// New creates a new CLI instance with a default logger and default config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Lifeparse reads Game of Life pattern files",
		Long:         `Lifeparse converts Life 1.05 and Life 1.06 pattern files into a normalized descriptor of rules and live cells.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lifeparse/config.toml)")

	// Register all subcommands
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, attaches the logger to the command context
// and, at debug level, routes observability events to the log.
func (c *CLI) setup(cmd *cobra.Command) error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		var err error
		if path, err = configFile(); err != nil {
			c.Logger.Debug("no config location", "err", err)
		}
	}
	if path != "" {
		cfg, err := LoadConfig(path, explicit)
		if err != nil {
			return err
		}
		c.Config = cfg
	}

	cache.SetRedisLogger(c.Logger)

	if c.Logger.GetLevel() <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetParseHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	r := pipeline.NewRunner(c.newCache(ctx, noCache), nil, c.Logger)
	if c.Config.Cache.TTL > 0 {
		r.TTL = c.Config.Cache.TTL
	}
	return r
}

// newCache opens the configured backend. A backend that cannot be opened is
// logged and replaced by a NullCache so parsing still works.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}

	var (
		ch  cache.Cache
		err error
	)
	switch c.Config.Cache.Backend {
	case backendNone:
		return cache.NewNullCache()
	case backendRedis:
		ch, err = cache.NewRedisCache(ctx, c.Config.Cache.RedisURL, cache.DefaultRedisPrefix)
	default:
		var dir string
		if dir, err = cacheDir(); err == nil {
			ch, err = cache.NewFileCache(dir)
		}
	}
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without cache", "backend", c.Config.Cache.Backend, "err", err)
		return cache.NewNullCache()
	}
	return ch
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/lifeparse/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configFile returns the default config path (~/.config/lifeparse/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
