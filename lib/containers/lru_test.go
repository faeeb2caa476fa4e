// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUCache(t *testing.T) {
	t.Parallel()
	cache := NewLRUCache[int, string](2)
	cache.Add(1, "one")
	cache.Add(2, "two")
	_, _ = cache.Get(1) // make 2 the least-recently-used
	cache.Add(3, "three")

	val, ok := cache.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", val)
	_, ok = cache.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, cache.Len())

	calls := 0
	fill := func() string {
		calls++
		return "four"
	}
	assert.Equal(t, "four", cache.GetOrElse(4, fill))
	assert.Equal(t, "four", cache.GetOrElse(4, fill))
	assert.Equal(t, 1, calls)

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestLRUCacheNil(t *testing.T) {
	t.Parallel()
	cache := NewLRUCache[int, string](0)
	assert.Nil(t, cache)
	cache.Add(1, "one")
	_, ok := cache.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
	cache.Purge()

	calls := 0
	fill := func() string {
		calls++
		return "x"
	}
	cache.GetOrElse(1, fill)
	cache.GetOrElse(1, fill)
	assert.Equal(t, 2, calls)
}
