package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/lifeparse/pkg/io"
	"github.com/matzehuels/lifeparse/pkg/pipeline"
)

// stdinArg selects standard input as the pattern source.
const stdinArg = "-"

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	format    string // format name, version or alias
	normalize bool   // shift cells so no coordinate is negative
	refresh   bool   // skip the cache lookup
	noCache   bool   // disable caching entirely
	output    string // output file path (stdout if empty)
}

// parseCommand creates the parse command.
func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Life 1.05 or Life 1.06 pattern file",
		Long: `Parse a Game of Life pattern file and print its descriptor as JSON.

The format is never guessed from the file contents: pass --format or set
"format" in the config file. Use "-" to read from standard input.

Examples:
  lifeparse parse glider.lif                         # Life 1.05 (default)
  lifeparse parse --format life106 cells.lif         # Life 1.06
  lifeparse parse --normalize -o glider.json glider.lif
  cat glider.lif | lifeparse parse -f 1.05 -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.Config.Format
			}
			if !cmd.Flags().Changed("normalize") {
				opts.normalize = c.Config.Normalize
			}
			return c.runParse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.DefaultFormat, "input format (see \"lifeparse formats\")")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "shift the pattern so no coordinate is negative")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runParse parses arg (a path or "-") and writes the descriptor JSON.
func (c *CLI) runParse(ctx context.Context, stdin io.Reader, stdout io.Writer, opts parseOpts, arg string) error {
	logger := loggerFromContext(ctx)

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	popts := pipeline.Options{
		Format:    opts.format,
		Normalize: opts.normalize,
		Refresh:   opts.refresh,
		Logger:    logger,
	}

	logger.Infof("Parsing %s (%s)", sourceName(arg), opts.format)
	prog := newProgress(logger)

	var (
		res *pipeline.Result
		err error
	)
	if arg == stdinArg {
		popts.Source = "stdin"
		res, err = runner.ParseReader(ctx, stdin, popts)
	} else {
		res, err = runner.ParseFile(ctx, arg, popts)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d live cells", res.Stats.Cells))

	if err := writeDescriptor(res, opts.output, stdout, logger); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Parsed %s", sourceName(arg))
		printStats(res)
		printFile(opts.output)
	}
	return nil
}

// writeDescriptor serializes the result as JSON to path (or stdout if empty).
func writeDescriptor(res *pipeline.Result, path string, stdout io.Writer, logger *log.Logger) error {
	out, err := openOutput(path, stdout)
	if err != nil {
		return err
	}
	if err := encodeAndClose(res, out, path); err != nil {
		return err
	}
	if path != "" {
		logger.Debugf("Wrote descriptor to %s", path)
	}
	return nil
}

// encodeAndClose writes the descriptor to out and closes it. A failed close
// is reported when the write itself succeeded.
func encodeAndClose(res *pipeline.Result, out io.WriteCloser, path string) error {
	werr := pkgio.WriteJSON(res.Descriptor, out)
	if cerr := out.Close(); cerr != nil && werr == nil {
		return fmt.Errorf("close %s: %w", path, cerr)
	}
	return werr
}

func sourceName(arg string) string {
	if arg == stdinArg {
		return "stdin"
	}
	return arg
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}
