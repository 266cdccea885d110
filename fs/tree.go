// Package fs provides file-based access to LaTeX source trees.
package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/citelean"
)

// Ensure SourceTree implements citelean.SourceTree at compile time.
var _ citelean.SourceTree = (*SourceTree)(nil)

// SourceTree walks the .tex files below a root directory.
// Files are visited in lexical order; symlinks are not followed.
type SourceTree struct {
	root string
}

// NewSourceTree creates a new SourceTree rooted at root.
func NewSourceTree(root string) *SourceTree {
	return &SourceTree{root: root}
}

// IsSource reports whether path names a LaTeX source.
func IsSource(path string) bool {
	base := filepath.Base(path)
	return filepath.Ext(base) == citelean.SourceExt && base != citelean.SourceExt
}

// Walk resolves the root to an absolute path and calls fn for each source.
// Other files are skipped without being read.
func (t *SourceTree) Walk(ctx context.Context, fn func(*citelean.SourceFile) error) error {
	root, err := canonicalize(t.root)
	if err != nil {
		return err
	}

	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !IsSource(path) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		name, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		return fn(&citelean.SourceFile{
			Path:    path,
			Name:    name,
			Content: string(content),
			Mode:    info.Mode().Perm(),
		})
	})
}

// Write overwrites f in place, keeping its permissions.
func (t *SourceTree) Write(ctx context.Context, f *citelean.SourceFile, content string) error {
	mode := f.Mode
	if mode == 0 {
		mode = 0644
	}
	return os.WriteFile(f.Path, []byte(content), mode)
}

func canonicalize(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
