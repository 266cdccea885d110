package msgpack

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/citelean"
)

// Ensure IndexStore implements citelean.IndexStore at compile time.
var _ citelean.IndexStore = (*IndexStore)(nil)

// IndexStore keeps the declaration index in a single cache file.
type IndexStore struct {
	path string
}

// NewIndexStore returns an IndexStore backed by the file at path.
func NewIndexStore(path string) *IndexStore {
	return &IndexStore{path: path}
}

// Path returns the cache file location.
func (s *IndexStore) Path() string {
	return s.path
}

// LoadIndex reads and decodes the cache file.
func (s *IndexStore) LoadIndex(ctx context.Context) (*citelean.Index, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, citelean.Errorf(citelean.ENOTFOUND, "cache %s not found; run 'citelean download' first", s.path)
	} else if err != nil {
		return nil, err
	}

	idx, err := decode(data)
	if err != nil {
		return nil, citelean.Errorf(citelean.ErrorCode(err), "%s: %s", s.path, citelean.ErrorMessage(err))
	}
	return idx, nil
}

// SaveIndex writes the index to a temporary file next to the cache and
// renames it into place.
func (s *IndexStore) SaveIndex(ctx context.Context, idx *citelean.Index) error {
	var buf bytes.Buffer
	if err := Encode(&buf, idx); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
