package main

import (
	"fmt"

	"github.com/fwojciec/citelean"
)

// Run executes the cite command. Files are rewritten one at a time; an
// unterminated marker stops the run, leaving already written files as they
// are. Missing declarations do not stop the run but make it fail at the end.
func (c *CiteCmd) Run(deps *Dependencies) error {
	idx, err := deps.Indexes.LoadIndex(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	style, err := citelean.ParseMarkerStyle(c.Style)
	if err != nil {
		return err
	}

	rewriter := &citelean.Rewriter{
		Index:    idx,
		Style:    style,
		Reporter: deps.Reporter,
	}

	missing := 0
	err = deps.Sources.Walk(deps.Ctx, func(f *citelean.SourceFile) error {
		deps.Logger.Debug("processing", "file", f.Name)

		result, err := rewriter.Rewrite(f.Path, f.Content)
		if err != nil {
			return err
		}
		missing += len(result.Diagnostics)

		if !result.Changed {
			deps.Logger.Debug("no changes", "file", f.Name)
			return nil
		}

		if !c.Write {
			fmt.Fprintln(deps.Stdout, result.Output)
			return nil
		}
		if err := deps.Sources.Write(deps.Ctx, f, result.Output); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		deps.Logger.Info("wrote", "file", f.Name)
		return nil
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if missing > 0 {
		return citelean.Errorf(citelean.EMISSING, "%d missing declaration(s)", missing)
	}
	return nil
}
