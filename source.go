package citelean

import (
	"context"
	"io/fs"
)

// SourceExt is the extension of files rewritten by citelean.
const SourceExt = ".tex"

// SourceFile is a LaTeX source read from a SourceTree.
type SourceFile struct {
	// Path is the absolute file path.
	Path string
	// Name is the path relative to the tree root, used in diagnostics.
	Name    string
	Content string
	Mode    fs.FileMode
}

// SourceTree enumerates and rewrites the LaTeX sources below a root.
type SourceTree interface {
	// Walk calls fn for every source file in walk order.
	// Walking stops at the first error returned by fn.
	Walk(ctx context.Context, fn func(*SourceFile) error) error

	// Write replaces the content of f.
	Write(ctx context.Context, f *SourceFile, content string) error
}
