/*
Copyright 2025 The Emerald Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// lruCache adapts hashicorp's LRU to the Cache interface and keeps an
// eviction counter, which the upstream implementation does not expose.
type lruCache[K comparable, V any] struct {
	backing   *lru.Cache[K, V]
	capacity  int
	evictions atomic.Int64
}

func newLRUCache[K comparable, V any](capacity int) *lruCache[K, V] {
	c := &lruCache[K, V]{capacity: capacity}
	backing, err := lru.NewWithEvict(capacity, func(K, V) {
		c.evictions.Add(1)
	})
	if err != nil {
		// Only reachable with a non-positive capacity, which New filters out.
		panic(err)
	}
	c.backing = backing
	return c
}

func (c *lruCache[K, V]) Get(key K) (V, bool) {
	return c.backing.Get(key)
}

func (c *lruCache[K, V]) Set(key K, val V) bool {
	c.backing.Add(key, val)
	return true
}

func (c *lruCache[K, V]) Delete(key K) {
	c.backing.Remove(key)
}

func (c *lruCache[K, V]) Clear() {
	c.backing.Purge()
}

func (c *lruCache[K, V]) Len() int {
	return c.backing.Len()
}

func (c *lruCache[K, V]) Evictions() int64 {
	return c.evictions.Load()
}

func (c *lruCache[K, V]) MaxCapacity() int {
	return c.capacity
}
