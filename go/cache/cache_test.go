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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUBasics(t *testing.T) {
	c := New[string, int](4)

	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 4, c.MaxCapacity())
}

func TestLRUEvicts(t *testing.T) {
	c := New[int, string](2)

	for i := 0; i < 5; i++ {
		c.Set(i, fmt.Sprintf("v%d", i))
	}

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(3), c.Evictions())

	// The two most recent entries survive.
	_, ok := c.Get(4)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
	_, ok = c.Get(0)
	assert.False(t, ok)
}

func TestLRUClear(t *testing.T) {
	c := New[string, int](8)
	c.Set("x", 1)
	c.Set("y", 2)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestZeroCapacityIsNull(t *testing.T) {
	c := New[string, int](0)

	assert.False(t, c.Set("a", 1))
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.MaxCapacity())
	assert.Equal(t, int64(0), c.Evictions())
}
