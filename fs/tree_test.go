package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/citelean"
	"github.com/fwojciec/citelean/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestIsSource(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"main.tex":         true,
		"ch/intro.tex":     true,
		"main.TEX":         false,
		"main.tex.bak":     false,
		"notes.md":         false,
		".tex":             false,
		"Makefile":         false,
		"/abs/path/a.tex":  true,
		"archive.tex.gz":   false,
		"dir.with.dot/x.t": false,
	}

	for path, want := range tests {
		path, want := path, want
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, want, fs.IsSource(path))
		})
	}
}

func TestSourceTree_Walk(t *testing.T) {
	t.Parallel()

	t.Run("visits only tex files in lexical order", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "main.tex"), "main")
		writeFile(t, filepath.Join(root, "chapters", "b.tex"), "b")
		writeFile(t, filepath.Join(root, "chapters", "a.tex"), "a")
		writeFile(t, filepath.Join(root, "README.md"), "readme")
		writeFile(t, filepath.Join(root, "refs.bib"), "bib")

		var names, contents []string
		err := fs.NewSourceTree(root).Walk(context.Background(), func(f *citelean.SourceFile) error {
			names = append(names, f.Name)
			contents = append(contents, f.Content)
			assert.True(t, filepath.IsAbs(f.Path))
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join("chapters", "a.tex"),
			filepath.Join("chapters", "b.tex"),
			"main.tex",
		}, names)
		assert.Equal(t, []string{"a", "b", "main"}, contents)
	})

	t.Run("skips directories named like sources", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "odd.tex", "inner.tex"), "inner")

		var names []string
		err := fs.NewSourceTree(root).Walk(context.Background(), func(f *citelean.SourceFile) error {
			names = append(names, f.Name)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join("odd.tex", "inner.tex")}, names)
	})

	t.Run("stops at first callback error", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.tex"), "a")
		writeFile(t, filepath.Join(root, "b.tex"), "b")

		stop := errors.New("stop")
		calls := 0
		err := fs.NewSourceTree(root).Walk(context.Background(), func(f *citelean.SourceFile) error {
			calls++
			return stop
		})

		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 1, calls)
	})

	t.Run("fails for missing root", func(t *testing.T) {
		t.Parallel()

		err := fs.NewSourceTree(filepath.Join(t.TempDir(), "nope")).Walk(context.Background(), func(*citelean.SourceFile) error {
			return nil
		})

		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.tex"), "a")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fs.NewSourceTree(root).Walk(ctx, func(*citelean.SourceFile) error {
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSourceTree_Write(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "main.tex")
	writeFile(t, path, "old")
	tree := fs.NewSourceTree(root)

	var file *citelean.SourceFile
	require.NoError(t, tree.Walk(context.Background(), func(f *citelean.SourceFile) error {
		file = f
		return nil
	}))
	require.NotNil(t, file)

	require.NoError(t, tree.Write(context.Background(), file, "new\n"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}
