package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/citelean"
	"github.com/fwojciec/citelean/fs"
	citehttp "github.com/fwojciec/citelean/http"
	"github.com/fwojciec/citelean/msgpack"
	citeslog "github.com/fwojciec/citelean/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ManifestSource overrides the HTTP manifest source. Used in tests.
	ManifestSource citelean.ManifestSource
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("citelean"),
		kong.Description("Link cite-lean(...) markers in LaTeX sources to Lean documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'citelean --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Indexes = citeslog.NewLoggingIndexStore(msgpack.NewIndexStore(cli.Cache), deps.Logger)

	switch strings.Fields(kongCtx.Command())[0] {
	case "download":
		src := m.ManifestSource
		if src == nil {
			src = citehttp.NewManifestSource(citehttp.WithTimeout(cli.Download.Timeout))
		}
		deps.Manifests = citeslog.NewLoggingManifestSource(src, deps.Logger)
	case "cite":
		deps.Sources = fs.NewSourceTree(cli.Cite.Root)
		deps.Reporter = citeslog.NewReporter(deps.Logger)
	}

	return kongCtx.Run(deps)
}

// errorText returns the message of application errors and the full text of
// any other error.
func errorText(err error) string {
	if citelean.ErrorCode(err) == citelean.EINTERNAL {
		return err.Error()
	}
	return citelean.ErrorMessage(err)
}

// newLogger returns a text logger without timestamps; output is meant to be
// read next to compiler logs.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
