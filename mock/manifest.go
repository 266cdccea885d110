package mock

import (
	"context"

	"github.com/fwojciec/citelean"
)

var _ citelean.ManifestSource = (*ManifestSource)(nil)

// ManifestSource is a mock implementation of citelean.ManifestSource.
type ManifestSource struct {
	FetchManifestFn func(ctx context.Context, docURL string) (*citelean.Manifest, error)
}

func (s *ManifestSource) FetchManifest(ctx context.Context, docURL string) (*citelean.Manifest, error) {
	return s.FetchManifestFn(ctx, docURL)
}
