package tools

import (
	"context"
	"sync"
)

// TagCatalog memoizes per-tool registry tag lookups for the process
// lifetime. The poller consults it on every poll to decide the default
// aggregation mode, so lookups must not hit the registry repeatedly.
// Invalidate clears the cache on an explicit admin signal.
type TagCatalog struct {
	registry Registry

	mu    sync.RWMutex
	cache map[string]bool
}

// NewTagCatalog creates a catalog over the given registry.
func NewTagCatalog(registry Registry) *TagCatalog {
	return &TagCatalog{
		registry: registry,
		cache:    make(map[string]bool),
	}
}

// IsHealthTool reports whether the named tool belongs to a service tagged
// "Health and Wellness". Lookup failures report false without caching, so a
// transient registry outage does not poison the memo.
func (c *TagCatalog) IsHealthTool(ctx context.Context, toolName string) bool {
	c.mu.RLock()
	cached, ok := c.cache[toolName]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	tool, err := c.registry.GetByName(ctx, toolName)
	if err != nil {
		return false
	}
	isHealth := tool.HasTag(HealthTag)

	c.mu.Lock()
	c.cache[toolName] = isHealth
	c.mu.Unlock()

	return isHealth
}

// Invalidate drops all memoized classifications.
func (c *TagCatalog) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]bool)
	c.mu.Unlock()
}
