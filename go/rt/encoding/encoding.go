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

// Package encoding tracks which character encoding tags every byte-bearing
// value in the runtime, maintains the process-wide table of known encodings
// and their aliases, and decides whether two encoded values may be
// implicitly combined and under which resulting encoding.
//
// The Registry owns all Encoding records; everything else holds shared
// references into it. Encoding records never change after registration, so
// readers need no synchronization once they hold one.
package encoding

import (
	"github.com/emeraldlang/emerald/go/rt/encoding/charset"
)

// Encoding is an immutable descriptor of a character encoding. Two
// encodings are equal iff their indices match; names never participate in
// equality.
type Encoding struct {
	name            string
	index           int
	asciiCompatible bool
	dummy           bool
	cs              charset.Charset
}

// Name returns the canonical name.
func (e *Encoding) Name() string {
	return e.name
}

// Index returns the registry index, the stable identity of this encoding.
func (e *Encoding) Index() int {
	return e.index
}

// IsASCIICompatible reports whether bytes below 0x80 denote the same
// characters as 7-bit ASCII under this encoding.
func (e *Encoding) IsASCIICompatible() bool {
	return e.asciiCompatible
}

// IsDummy reports whether this encoding is registered but not behaviorally
// implemented.
func (e *Encoding) IsDummy() bool {
	return e.dummy
}

// Charset returns the character boundary rules for this encoding.
func (e *Encoding) Charset() charset.Charset {
	return e.cs
}

// Equal reports whether both encodings carry the same registry identity.
// Nil-safe on either side.
func (e *Encoding) Equal(other *Encoding) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.index == other.index
}

func (e *Encoding) String() string {
	return e.name
}
