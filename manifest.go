package citelean

import "context"

// ManifestPath is the location of the declaration manifest relative to the
// documentation root.
const ManifestPath = "/declarations/declaration-data.bmp"

// Manifest is the declaration manifest published alongside the generated
// documentation. Only the fields citelean needs are decoded.
type Manifest struct {
	Declarations map[string]Declaration `json:"declarations"`
}

// Declaration is a single entry of the manifest.
type Declaration struct {
	DocLink string `json:"docLink"`
}

// Index projects the manifest onto name to doc link pairs.
func (m *Manifest) Index(root string) *Index {
	declarations := make(map[string]string, len(m.Declarations))
	for name, decl := range m.Declarations {
		declarations[name] = decl.DocLink
	}
	return &Index{root: root, declarations: declarations}
}

// ManifestSource retrieves the declaration manifest for a documentation site.
type ManifestSource interface {
	// FetchManifest downloads and decodes the manifest below docURL.
	FetchManifest(ctx context.Context, docURL string) (*Manifest, error)
}
