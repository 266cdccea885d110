package citelean_test

import (
	"testing"

	"github.com/fwojciec/citelean"
	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	t.Run("looks up declarations case-sensitively", func(t *testing.T) {
		t.Parallel()

		idx := citelean.NewIndex("", map[string]string{"Foo.Bar": "Foo.html#Foo.Bar"})

		link, ok := idx.Lookup("Foo.Bar")
		assert.True(t, ok)
		assert.Equal(t, "Foo.html#Foo.Bar", link)

		_, ok = idx.Lookup("foo.bar")
		assert.False(t, ok)
	})

	t.Run("is not affected by later changes to the source map", func(t *testing.T) {
		t.Parallel()

		src := map[string]string{"A": "a.html"}
		idx := citelean.NewIndex("https://docs.example/", src)
		src["B"] = "b.html"
		idx.Declarations()["C"] = "c.html"

		assert.Equal(t, 1, idx.Len())
		_, ok := idx.Lookup("B")
		assert.False(t, ok)
		assert.Equal(t, "https://docs.example/", idx.Root())
	})

	t.Run("compares root and declarations", func(t *testing.T) {
		t.Parallel()

		a := citelean.NewIndex("r", map[string]string{"A": "a.html"})

		assert.True(t, a.Equal(citelean.NewIndex("r", map[string]string{"A": "a.html"})))
		assert.False(t, a.Equal(citelean.NewIndex("", map[string]string{"A": "a.html"})))
		assert.False(t, a.Equal(citelean.NewIndex("r", map[string]string{"A": "b.html"})))
		assert.False(t, a.Equal(nil))
	})
}

func TestManifest_Index(t *testing.T) {
	t.Parallel()

	m := &citelean.Manifest{
		Declarations: map[string]citelean.Declaration{
			"Nat.add_comm": {DocLink: "./Init/Data/Nat.html#Nat.add_comm"},
			"Foo":          {DocLink: "./Foo.html#Foo"},
		},
	}

	idx := m.Index("https://docs.example/")

	assert.Equal(t, "https://docs.example/", idx.Root())
	assert.Equal(t, map[string]string{
		"Nat.add_comm": "./Init/Data/Nat.html#Nat.add_comm",
		"Foo":          "./Foo.html#Foo",
	}, idx.Declarations())
}
