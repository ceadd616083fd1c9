package texture

import (
	"image"
	"os"
	"sync"

	"bve-compiler/internal/object"
)

// Resolver returns the decoded image bound to a mesh texture, or nil when it
// cannot be loaded.
type Resolver interface {
	Resolve(t object.Texture) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Failed loads are cached as nil
// so each file is tried once.
type Cache struct {
	mu    sync.RWMutex
	items map[cacheKey]*image.NRGBA
	index *Index
}

type cacheKey struct {
	path     string
	decal    [3]uint8
	hasDecal bool
}

// NewCache returns an empty cache. When index is non-nil, texture files that
// do not exist at their resolved path are looked up by base name in it.
func NewCache(index *Index) *Cache {
	return &Cache{items: make(map[cacheKey]*image.NRGBA), index: index}
}

func (c *Cache) Resolve(t object.Texture) *image.NRGBA {
	if t.File == "" {
		return nil
	}
	key := cacheKey{path: c.locate(t.File), hasDecal: t.HasDecalColor}
	if t.HasDecalColor {
		key.decal = [3]uint8{t.DecalColor.R, t.DecalColor.G, t.DecalColor.B}
	}

	c.mu.RLock()
	img, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return img
	}

	img, err := Load(key.path)
	if err == nil && key.hasDecal {
		img = ApplyDecal(img, key.decal)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.items[key]; ok {
		return cached
	}
	c.items[key] = img
	return img
}

// Len returns the number of cached entries, failed loads included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache) locate(path string) string {
	if c.index == nil {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if p, ok := c.index.ResolvePath(path); ok {
		return p
	}
	return path
}
