// Package cache provides a small generic LRU cache with a soft limit.
//
//	faces := cache.New[key, text.Face](32)
//	f := faces.GetOrCreate(k, func() text.Face { return src.Face(k.size) })
//
// When the soft limit is exceeded the least recently used quarter of the
// entries is dropped. Cache is safe for concurrent use and must not be
// copied after creation.
package cache
