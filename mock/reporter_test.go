package mock_test

import (
	"testing"

	"github.com/fwojciec/citelean"
	"github.com/fwojciec/citelean/mock"
	"github.com/stretchr/testify/assert"
)

func TestReporter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ citelean.Reporter = &mock.Reporter{}
}

func TestReporter(t *testing.T) {
	t.Parallel()

	t.Run("delegates to function fields", func(t *testing.T) {
		t.Parallel()

		var gotKey string
		var gotDiag citelean.Diagnostic
		r := &mock.Reporter{
			ResolvedFn: func(_, key, _ string) { gotKey = key },
			MissingFn:  func(d citelean.Diagnostic) { gotDiag = d },
		}

		r.Resolved("a.tex", "Foo", "Foo.html#Foo")
		r.Missing(citelean.Diagnostic{Path: "a.tex", Line: 2, Column: 11, Key: "Bar"})

		assert.Equal(t, "Foo", gotKey)
		assert.Equal(t, "Bar", gotDiag.Key)
	})

	t.Run("ignores nil function fields", func(t *testing.T) {
		t.Parallel()

		r := &mock.Reporter{}

		assert.NotPanics(t, func() {
			r.Resolved("a.tex", "Foo", "Foo.html#Foo")
			r.Missing(citelean.Diagnostic{})
		})
	})
}
