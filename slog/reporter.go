// Package slog provides log/slog implementations of citelean's event sinks
// and logging decorators for its services.
package slog

import (
	"log/slog"

	"github.com/fwojciec/citelean"
)

// Ensure Reporter implements citelean.Reporter.
var _ citelean.Reporter = (*Reporter)(nil)

// Reporter logs rewrite events. Missing declarations are logged at error
// level and counted.
type Reporter struct {
	logger  *slog.Logger
	missing int
}

// NewReporter creates a new Reporter.
func NewReporter(logger *slog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Resolved logs a resolved marker.
func (r *Reporter) Resolved(path, key, docLink string) {
	r.logger.Info("resolved", "file", path, "key", key, "doc_link", docLink)
}

// Missing logs a marker whose declaration is unknown.
func (r *Reporter) Missing(d citelean.Diagnostic) {
	r.missing++
	r.logger.Error("missing declaration "+d.String(), "key", d.Key)
}

// MissingCount returns the number of missing declarations reported so far.
func (r *Reporter) MissingCount() int {
	return r.missing
}
