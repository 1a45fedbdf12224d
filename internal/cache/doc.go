// Package cache provides a generic LRU cache.
//
//	c := cache.New[string, int](100)
//	value := c.GetOrCreate("key", func() int { return 42 })
//
// The surface package uses it to keep rasterized glyph masks, so a glyph
// is rasterized once per size rather than once per frame.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
