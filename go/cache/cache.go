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

// Cache is a generic interface for a bounded data structure that keeps
// recently used entries in memory and evicts them when it becomes full.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, val V) bool

	Delete(key K)
	Clear()

	Len() int
	Evictions() int64
	MaxCapacity() int
}

// New returns the default cache implementation, which is a thread-safe LRU.
// A capacity of zero disables caching entirely: the returned cache stores
// nothing and misses on every read.
func New[K comparable, V any](capacity int) Cache[K, V] {
	if capacity <= 0 {
		return &nullCache[K, V]{}
	}
	return newLRUCache[K, V](capacity)
}
