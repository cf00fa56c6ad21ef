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

// Package stats publishes runtime counters through expvar.
//
// Variables created with a non-empty name are registered with expvar and
// show up on the standard /debug/vars endpoint. An empty name creates an
// unpublished variable, which is useful in tests.
package stats

import (
	"expvar"
	"strconv"
	"sync/atomic"
)

// Counter tracks a monotonically increasing cumulative count.
type Counter struct {
	i    atomic.Int64
	help string
}

// NewCounter returns a new Counter, published under name if it is non-empty.
// Publishing the same name twice is a bug in the caller and panics, matching
// expvar's own behavior.
func NewCounter(name, help string) *Counter {
	c := &Counter{help: help}
	if name != "" {
		expvar.Publish(name, c)
	}
	return c
}

// Add adds the provided value to the Counter.
func (c *Counter) Add(delta int64) {
	c.i.Add(delta)
}

// Reset resets the counter value to 0.
func (c *Counter) Reset() {
	c.i.Store(0)
}

// Get returns the value.
func (c *Counter) Get() int64 {
	return c.i.Load()
}

// Help returns the description.
func (c *Counter) Help() string {
	return c.help
}

// String implements expvar.Var.
func (c *Counter) String() string {
	return strconv.FormatInt(c.i.Load(), 10)
}

// Gauge tracks a value that can go up and down.
type Gauge struct {
	Counter
}

// NewGauge returns a new Gauge, published under name if it is non-empty.
func NewGauge(name, help string) *Gauge {
	g := &Gauge{Counter: Counter{help: help}}
	if name != "" {
		expvar.Publish(name, g)
	}
	return g
}

// Set overwrites the current value.
func (g *Gauge) Set(value int64) {
	g.Counter.i.Store(value)
}
