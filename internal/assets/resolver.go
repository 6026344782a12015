// Package assets resolves and serves the images and videos referenced by the
// content tables.
package assets

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotFound is returned when a media object does not exist.
var ErrNotFound = errors.New("assets: not found")

const (
	// DefaultStaticPrefix is where bundled assets are mounted.
	DefaultStaticPrefix = "/static"
	// MediaPrefix is where MediaHandler is mounted.
	MediaPrefix = "/media"
)

// Resolver turns content-table asset paths into URLs.
type Resolver struct {
	base string
}

// NewResolver returns a resolver rooted at cdnBase when set, otherwise at
// staticPrefix on this host.
func NewResolver(staticPrefix, cdnBase string) Resolver {
	base := strings.TrimRight(cdnBase, "/")
	if base == "" {
		base = strings.TrimRight(staticPrefix, "/")
	}
	return Resolver{base: base}
}

// URL returns the public URL of an asset path. Absolute URLs pass through.
// Path segments are escaped, so names with spaces stay valid.
func (r Resolver) URL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return r.base + (&url.URL{Path: path}).EscapedPath()
}
