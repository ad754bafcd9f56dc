// Package basepath rewrites site-internal paths for deployments served from a sub-path
package basepath

import (
	"net/url"
	"strings"
)

// BasePath is a normalized URL path prefix ("" or "/something" without a trailing slash)
type BasePath string

// New normalizes a configured prefix.
//
// "", "/" and whitespace all mean root-relative. A missing leading slash is added and trailing slashes are dropped.
func New(prefix string) BasePath {
	prefix = strings.TrimSpace(prefix)
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return BasePath(prefix)
}

// String returns the prefix itself
func (b BasePath) String() string {
	return string(b)
}

// With prefixes path with the base path.
//
// An empty path yields the base path itself. The result is not idempotent: applying With twice prefixes twice.
func (b BasePath) With(path string) string {
	if path == "" {
		return string(b)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return string(b) + path
}

// IsInternal reports whether path refers to a site-hosted asset rather than an external URL
func (b BasePath) IsInternal(path string) bool {
	if path == "" || strings.HasPrefix(path, "//") {
		return false
	}
	u, err := url.Parse(path)
	if err != nil {
		return strings.HasPrefix(path, "/")
	}
	return u.Scheme == "" && u.Host == ""
}

// Asset applies the base path to internal asset paths and leaves external URLs untouched
func (b BasePath) Asset(path string) string {
	if !b.IsInternal(path) {
		return path
	}
	return b.With(path)
}
