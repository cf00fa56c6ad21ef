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

// nullCache is a no-op cache. It is used when caching is disabled so that
// callers never need a nil check before a cache operation.
type nullCache[K comparable, V any] struct{}

func (n *nullCache[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}

func (n *nullCache[K, V]) Set(K, V) bool { return false }

func (n *nullCache[K, V]) Delete(K) {}

func (n *nullCache[K, V]) Clear() {}

func (n *nullCache[K, V]) Len() int { return 0 }

func (n *nullCache[K, V]) Evictions() int64 { return 0 }

func (n *nullCache[K, V]) MaxCapacity() int { return 0 }
