// Package http provides an HTTP-based implementation of
// citelean.ManifestSource for documentation sites generated by doc-gen4.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/citelean"
)

// DefaultTimeout is the default timeout for the manifest request.
// The manifest of a large library is tens of megabytes.
const DefaultTimeout = 30 * time.Second

// Ensure ManifestSource implements citelean.ManifestSource at compile time.
var _ citelean.ManifestSource = (*ManifestSource)(nil)

// ManifestSource downloads the declaration manifest with a single GET
// request. Failed requests are not retried.
type ManifestSource struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a ManifestSource.
type Option func(*ManifestSource)

// WithTimeout sets the timeout for the manifest request.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *ManifestSource) {
		s.timeout = d
	}
}

// WithClient sets the HTTP client. The client's own timeout is replaced.
func WithClient(c *http.Client) Option {
	return func(s *ManifestSource) {
		s.client = c
	}
}

// NewManifestSource creates a new HTTP-based ManifestSource.
func NewManifestSource(opts ...Option) *ManifestSource {
	s := &ManifestSource{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{}
	} else {
		c := *s.client
		s.client = &c
	}
	s.client.Timeout = s.timeout

	return s
}

// ManifestURL returns the manifest location for a documentation root.
func ManifestURL(docURL string) string {
	return strings.TrimRight(docURL, "/") + citelean.ManifestPath
}

// FetchManifest retrieves and decodes the manifest below docURL.
func (s *ManifestSource) FetchManifest(ctx context.Context, docURL string) (*citelean.Manifest, error) {
	if docURL == "" {
		return nil, citelean.Errorf(citelean.EINVALID, "documentation URL required")
	}

	u := ManifestURL(docURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, u)
	}

	var m citelean.Manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest from %s: %w", u, err)
	}
	return &m, nil
}
