package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/lifeparse/pkg/errors"
	pkgio "github.com/matzehuels/lifeparse/pkg/io"
	"github.com/matzehuels/lifeparse/pkg/pattern"
	"github.com/matzehuels/lifeparse/pkg/pipeline"
)

const gliderFile = "#Life 1.05\n#D Glider\n#N\n#P -1 -1\n.*.\n..*\n***\n"

func testCLI(t *testing.T) (*CLI, context.Context) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	var logs bytes.Buffer
	c := New(&logs, log.ErrorLevel)
	return c, withLogger(context.Background(), c.Logger)
}

func TestRunParseStdout(t *testing.T) {
	c, ctx := testCLI(t)
	path := filepath.Join(t.TempDir(), "glider.lif")
	if err := os.WriteFile(path, []byte(gliderFile), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	opts := parseOpts{format: "life105", normalize: true}
	if err := c.runParse(ctx, nil, &out, opts, path); err != nil {
		t.Fatalf("runParse: %v", err)
	}

	d, err := pkgio.ReadJSON(&out)
	if err != nil {
		t.Fatalf("output is not a descriptor: %v", err)
	}
	if d.Len() != 5 {
		t.Errorf("Len() = %d, want 5", d.Len())
	}
	if lo, _, _ := d.Bounds(); lo.X != 0 || lo.Y != 0 {
		t.Errorf("normalized min = %v, want (0,0)", lo)
	}
	if got := d.Comments(); len(got) != 1 || got[0] != "Glider" {
		t.Errorf("Comments() = %q", got)
	}
}

func TestRunParseStdin(t *testing.T) {
	c, ctx := testCLI(t)
	var out bytes.Buffer
	opts := parseOpts{format: "1.06", noCache: true}
	if err := c.runParse(ctx, strings.NewReader("#Life 1.06\n0 0\n-1 2\n"), &out, opts, stdinArg); err != nil {
		t.Fatalf("runParse: %v", err)
	}
	d, err := pkgio.ReadJSON(&out)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestRunParseOutputFile(t *testing.T) {
	c, ctx := testCLI(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "glider.lif")
	out := filepath.Join(dir, "glider.json")
	if err := os.WriteFile(in, []byte(gliderFile), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := c.runParse(ctx, nil, &stdout, parseOpts{format: "life105", output: out}, in); err != nil {
		t.Fatalf("runParse: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty when -o is set, got %q", stdout.String())
	}
	d, err := pkgio.ImportJSON(out)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if d.Len() != 5 {
		t.Errorf("Len() = %d, want 5", d.Len())
	}
}

func TestRunParseErrors(t *testing.T) {
	c, ctx := testCLI(t)
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.lif")
	if err := os.WriteFile(bad, []byte("#P 0 0\n.*x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts parseOpts
		arg  string
		code errs.Code
	}{
		{"missing file", parseOpts{format: "life105"}, filepath.Join(dir, "missing.lif"), errs.ErrCodeFileNotFound},
		{"unknown format", parseOpts{format: "rle"}, bad, errs.ErrCodeUnsupported},
		{"malformed", parseOpts{format: "life105"}, bad, errs.ErrCodeMalformedLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := c.runParse(ctx, nil, &out, tt.opts, tt.arg)
			if got := errs.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
			if out.Len() != 0 {
				t.Errorf("nothing should be written on error, got %q", out.String())
			}
		})
	}
}

func TestParseCommandUsesConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cfgPath := writeConfig(t, "format = \"life106\"\n[cache]\nbackend = \"none\"\n")
	in := filepath.Join(t.TempDir(), "cells.lif")
	if err := os.WriteFile(in, []byte("3 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(&bytes.Buffer{}, log.ErrorLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", cfgPath, "parse", in})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	d, err := pkgio.ReadJSON(&out)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if cells := d.LiveCells(); len(cells) != 1 || cells[0].X != 3 || cells[0].Y != 4 {
		t.Errorf("LiveCells() = %v, want [(3,4)]", cells)
	}
}

func TestFprintError(t *testing.T) {
	var buf bytes.Buffer
	fprintError(&buf, errs.MalformedLine(3))
	out := buf.String()
	if !strings.Contains(out, "line 3: malformed line") || !strings.Contains(out, "MALFORMED_LINE") {
		t.Errorf("fprintError() = %q", out)
	}
}

type closeFailWriter struct {
	bytes.Buffer
	err error
}

func (w *closeFailWriter) Close() error { return w.err }

func TestEncodeAndCloseReportsCloseError(t *testing.T) {
	res := &pipeline.Result{Descriptor: pattern.New()}
	flushErr := errors.New("flush failed")

	w := &closeFailWriter{err: flushErr}
	if err := encodeAndClose(res, w, "out.json"); !errors.Is(err, flushErr) {
		t.Errorf("encodeAndClose() = %v, want close error", err)
	}
	if w.Len() == 0 {
		t.Error("descriptor was not written before close")
	}

	if err := encodeAndClose(res, &closeFailWriter{}, "out.json"); err != nil {
		t.Errorf("encodeAndClose() = %v, want nil", err)
	}
}
