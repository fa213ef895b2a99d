// Package cache provides a small generic LRU cache.
//
//	c := cache.New[uint64, *pixbuf.Buffer](8)
//	c.OnEvict = pool.Put
//	c.Set(id, composite)
//	buf, ok := c.Get(id)
//
// The cache is used from the engine's single goroutine and does no locking.
package cache
