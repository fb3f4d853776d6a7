package resource

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// Loader resolves resource identifiers against a base URL and downloads
// their text.
type Loader struct {
	fs      afs.Service
	baseURL string
}

// New creates a loader; relative identifiers are resolved against baseURL
// (the working directory when empty).
func New(baseURL string) *Loader {
	return &Loader{fs: afs.New(), baseURL: baseURL}
}

// BaseURL returns the base location for relative identifiers.
func (l *Loader) BaseURL() string { return l.baseURL }

// URL returns the location an identifier resolves to.
func (l *Loader) URL(id string) string {
	if l.baseURL == "" || strings.Contains(id, "://") || filepath.IsAbs(id) {
		return id
	}
	return url.Join(l.baseURL, id)
}

// LoadText downloads the resource named by id.
func (l *Loader) LoadText(ctx context.Context, id string) (string, error) {
	location := l.URL(strings.TrimSpace(id))
	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return "", fmt.Errorf("failed to load resource %q: %w", id, err)
	}
	return string(data), nil
}
