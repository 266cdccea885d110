package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/citelean"
)

// Ensure LoggingIndexStore implements citelean.IndexStore.
var _ citelean.IndexStore = (*LoggingIndexStore)(nil)

// LoggingIndexStore wraps an IndexStore with debug logging.
type LoggingIndexStore struct {
	next   citelean.IndexStore
	logger *slog.Logger
}

// NewLoggingIndexStore creates a new LoggingIndexStore.
func NewLoggingIndexStore(next citelean.IndexStore, logger *slog.Logger) *LoggingIndexStore {
	return &LoggingIndexStore{next: next, logger: logger}
}

// LoadIndex delegates to the wrapped store and logs the operation.
func (s *LoggingIndexStore) LoadIndex(ctx context.Context) (idx *citelean.Index, err error) {
	defer func(begin time.Time) {
		count := 0
		if idx != nil {
			count = idx.Len()
		}
		s.logger.Debug("load index",
			"declarations", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadIndex(ctx)
}

// SaveIndex delegates to the wrapped store and logs the operation.
func (s *LoggingIndexStore) SaveIndex(ctx context.Context, idx *citelean.Index) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save index",
			"declarations", idx.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveIndex(ctx, idx)
}
