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

package stats

import (
	"expvar"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := NewCounter("", "test counter")
	c.Add(1)
	c.Add(41)

	assert.Equal(t, int64(42), c.Get())
	assert.Equal(t, "42", c.String())
	assert.Equal(t, "test counter", c.Help())

	c.Reset()
	assert.Equal(t, int64(0), c.Get())
}

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter("", "concurrent counter")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(8000), c.Get())
}

func TestGauge(t *testing.T) {
	g := NewGauge("", "test gauge")
	g.Set(17)
	assert.Equal(t, int64(17), g.Get())
	g.Set(3)
	assert.Equal(t, int64(3), g.Get())
}

func TestPublish(t *testing.T) {
	c := NewCounter("stats_test_published_counter", "published")
	c.Add(5)

	v := expvar.Get("stats_test_published_counter")
	require.NotNil(t, v)
	assert.Equal(t, "5", v.String())

	g := NewGauge("stats_test_published_gauge", "published")
	g.Set(-2)

	v = expvar.Get("stats_test_published_gauge")
	require.NotNil(t, v)
	assert.Equal(t, "-2", v.String())

	// Unnamed variables stay out of the expvar namespace.
	assert.Nil(t, expvar.Get(""))
}
