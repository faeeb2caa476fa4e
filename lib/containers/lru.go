// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	lru "github.com/hashicorp/golang-lru"
)

// LRUCache is a typed least-recently-used cache.  A zero LRUCache is
// not usable; it must be initialized with NewLRUCache.  A nil
// *LRUCache is usable, and caches nothing.
type LRUCache[K comparable, V any] struct {
	inner *lru.Cache
}

// NewLRUCache returns a cache holding at most size entries.  If size
// is not positive, NewLRUCache returns nil (a cache that caches
// nothing).
func NewLRUCache[K comparable, V any](size int) *LRUCache[K, V] {
	if size <= 0 {
		return nil
	}
	inner, err := lru.New(size)
	if err != nil {
		// lru.New only fails for non-positive sizes.
		panic(err)
	}
	return &LRUCache[K, V]{inner: inner}
}

func (c *LRUCache[K, V]) Add(key K, value V) {
	if c == nil {
		return
	}
	c.inner.Add(key, value)
}

func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	if c == nil {
		return value, false
	}
	_value, ok := c.inner.Get(key)
	if ok {
		//nolint:forcetypeassert // Typed wrapper around untyped lib.
		value = _value.(V)
	}
	return value, ok
}

func (c *LRUCache[K, V]) Len() int {
	if c == nil {
		return 0
	}
	return c.inner.Len()
}

func (c *LRUCache[K, V]) Purge() {
	if c == nil {
		return
	}
	c.inner.Purge()
}

// GetOrElse returns the cached value for key, calling fn to fill the
// cache on a miss.
func (c *LRUCache[K, V]) GetOrElse(key K, fn func() V) V {
	if value, ok := c.Get(key); ok {
		return value
	}
	value := fn()
	c.Add(key, value)
	return value
}
