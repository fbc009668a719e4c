package host

import (
	"context"
	"sync"

	"github.com/llehouerou/titleformat/internal/titlefmt"
)

// CachedSource resolves settings once and reuses them until Invalidate is
// called. A failed resolution is not cached. Safe for concurrent use.
type CachedSource struct {
	src SettingsSource

	mu       sync.Mutex
	settings titlefmt.Settings
	valid    bool
}

// NewCachedSource wraps src.
func NewCachedSource(src SettingsSource) *CachedSource {
	return &CachedSource{src: src}
}

func (c *CachedSource) Settings(ctx context.Context) (titlefmt.Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid {
		return c.settings, nil
	}
	s, err := c.src.Settings(ctx)
	if err != nil {
		return titlefmt.Settings{}, err
	}
	c.settings = s
	c.valid = true
	return s, nil
}

// Invalidate drops the cached value; the next call resolves again.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.settings = titlefmt.Settings{}
	c.mu.Unlock()
}
