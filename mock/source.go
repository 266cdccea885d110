package mock

import (
	"context"

	"github.com/fwojciec/citelean"
)

var _ citelean.SourceTree = (*SourceTree)(nil)

// SourceTree is a mock implementation of citelean.SourceTree.
type SourceTree struct {
	WalkFn  func(ctx context.Context, fn func(*citelean.SourceFile) error) error
	WriteFn func(ctx context.Context, f *citelean.SourceFile, content string) error
}

func (t *SourceTree) Walk(ctx context.Context, fn func(*citelean.SourceFile) error) error {
	return t.WalkFn(ctx, fn)
}

func (t *SourceTree) Write(ctx context.Context, f *citelean.SourceFile, content string) error {
	return t.WriteFn(ctx, f, content)
}

// Files returns a WalkFn that visits files in order.
func Files(files ...*citelean.SourceFile) func(ctx context.Context, fn func(*citelean.SourceFile) error) error {
	return func(ctx context.Context, fn func(*citelean.SourceFile) error) error {
		for _, f := range files {
			if err := fn(f); err != nil {
				return err
			}
		}
		return nil
	}
}
