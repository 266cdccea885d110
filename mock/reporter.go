package mock

import "github.com/fwojciec/citelean"

var _ citelean.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of citelean.Reporter.
// Nil function fields are ignored.
type Reporter struct {
	ResolvedFn func(path, key, docLink string)
	MissingFn  func(d citelean.Diagnostic)
}

func (r *Reporter) Resolved(path, key, docLink string) {
	if r.ResolvedFn != nil {
		r.ResolvedFn(path, key, docLink)
	}
}

func (r *Reporter) Missing(d citelean.Diagnostic) {
	if r.MissingFn != nil {
		r.MissingFn(d)
	}
}
