package mock

import (
	"context"

	"github.com/fwojciec/citelean"
)

var _ citelean.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of citelean.IndexStore.
type IndexStore struct {
	LoadIndexFn func(ctx context.Context) (*citelean.Index, error)
	SaveIndexFn func(ctx context.Context, idx *citelean.Index) error
}

func (s *IndexStore) LoadIndex(ctx context.Context) (*citelean.Index, error) {
	return s.LoadIndexFn(ctx)
}

func (s *IndexStore) SaveIndex(ctx context.Context, idx *citelean.Index) error {
	return s.SaveIndexFn(ctx, idx)
}
