package citelean

import (
	"context"
	"maps"
)

// DefaultCachePath is where the declaration index is cached between the
// download and cite steps.
const DefaultCachePath = ".cite-lean.bin"

// Index maps declaration names to their raw documentation links.
// An Index is immutable once constructed.
type Index struct {
	root         string
	declarations map[string]string
}

// NewIndex returns an Index over a copy of declarations.
// root is the documentation root URL and may be empty.
func NewIndex(root string, declarations map[string]string) *Index {
	m := make(map[string]string, len(declarations))
	maps.Copy(m, declarations)
	return &Index{root: root, declarations: m}
}

// Lookup returns the raw doc link for the named declaration.
func (idx *Index) Lookup(name string) (string, bool) {
	link, ok := idx.declarations[name]
	return link, ok
}

// Root returns the documentation root URL.
func (idx *Index) Root() string {
	return idx.root
}

// Len returns the number of declarations in the index.
func (idx *Index) Len() int {
	return len(idx.declarations)
}

// Declarations returns a copy of the name to doc link mapping.
func (idx *Index) Declarations() map[string]string {
	return maps.Clone(idx.declarations)
}

// Equal reports whether both indexes hold the same root and declarations.
func (idx *Index) Equal(other *Index) bool {
	if idx == nil || other == nil {
		return idx == other
	}
	return idx.root == other.root && maps.Equal(idx.declarations, other.declarations)
}

// IndexStore persists the declaration index between runs.
type IndexStore interface {
	// LoadIndex reads the cached index.
	// Returns ENOTFOUND if no cache exists and ECORRUPT if it cannot be decoded.
	LoadIndex(ctx context.Context) (*Index, error)

	// SaveIndex replaces the cached index.
	SaveIndex(ctx context.Context, idx *Index) error
}
