package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/citelean"
)

// Ensure LoggingManifestSource implements citelean.ManifestSource.
var _ citelean.ManifestSource = (*LoggingManifestSource)(nil)

// LoggingManifestSource wraps a ManifestSource with logging.
type LoggingManifestSource struct {
	next   citelean.ManifestSource
	logger *slog.Logger
}

// NewLoggingManifestSource creates a new LoggingManifestSource.
func NewLoggingManifestSource(next citelean.ManifestSource, logger *slog.Logger) *LoggingManifestSource {
	return &LoggingManifestSource{next: next, logger: logger}
}

// FetchManifest delegates to the wrapped source and logs the operation.
func (s *LoggingManifestSource) FetchManifest(ctx context.Context, docURL string) (m *citelean.Manifest, err error) {
	defer func(begin time.Time) {
		count := 0
		if m != nil {
			count = len(m.Declarations)
		}
		s.logger.Info("fetch manifest",
			"url", docURL,
			"declarations", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchManifest(ctx, docURL)
}
