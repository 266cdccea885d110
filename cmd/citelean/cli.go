package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/citelean"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Indexes   citelean.IndexStore
	Manifests citelean.ManifestSource
	Sources   citelean.SourceTree
	Reporter  citelean.Reporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Cache   string `default:".cite-lean.bin" env:"CITELEAN_CACHE" help:"Declaration cache file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Download DownloadCmd `cmd:"" help:"Download the declaration manifest and cache it"`
	Cite     CiteCmd     `cmd:"" help:"Replace cite-lean markers in .tex files"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	DocURL  string        `short:"d" name:"doc-url" required:"" help:"Documentation root URL"`
	Timeout time.Duration `short:"t" default:"30s" help:"Download timeout"`
}

// CiteCmd is the "cite" subcommand.
type CiteCmd struct {
	Write bool   `short:"w" help:"Overwrite changed files instead of printing them"`
	Style string `short:"s" default:"simple" enum:"simple,extended" env:"CITELEAN_STYLE" help:"Marker style (simple, extended)"`
	Root  string `arg:"" help:"Directory containing .tex sources"`
}
