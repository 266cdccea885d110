package main

import "fmt"

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	m, err := deps.Manifests.FetchManifest(deps.Ctx, c.DocURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	idx := m.Index(c.DocURL)
	if err := deps.Indexes.SaveIndex(deps.Ctx, idx); err != nil {
		fmt.Fprintf(deps.Stderr, "error saving cache: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cached %d declarations\n", idx.Len())
	return nil
}
