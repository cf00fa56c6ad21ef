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

package encoding

import (
	"sync/atomic"
)

// Value is a byte sequence tagged with its encoding. The bytes are
// immutable by contract: callers hand ownership to the Value and must not
// mutate the slice afterwards.
//
// The code range classification is computed lazily on first access and
// memoized. The memo is a write-once atomic cell: racing first accesses may
// both scan, which is harmless since the scan is pure, but readers can
// never observe a torn value.
type Value struct {
	bytes     []byte
	enc       *Encoding
	codeRange atomic.Uint32
}

// NewValue wraps bytes under the given encoding.
func NewValue(bytes []byte, enc *Encoding) *Value {
	return &Value{bytes: bytes, enc: enc}
}

// Bytes returns the underlying bytes. Callers must not mutate them.
func (v *Value) Bytes() []byte {
	return v.bytes
}

// Encoding returns the declared encoding.
func (v *Value) Encoding() *Encoding {
	return v.enc
}

// Len returns the byte length.
func (v *Value) Len() int {
	return len(v.bytes)
}

// IsEmpty reports whether the value holds no bytes.
func (v *Value) IsEmpty() bool {
	return len(v.bytes) == 0
}

// CodeRange returns the classification of the content, computing and
// memoizing it on first call.
func (v *Value) CodeRange() CodeRange {
	if cr := CodeRange(v.codeRange.Load()); cr != CodeRangeUnknown {
		return cr
	}
	cr := ScanCodeRange(v.bytes, v.enc.Charset())
	v.codeRange.Store(uint32(cr))
	return cr
}

// KnownCodeRange returns the memoized classification without computing it:
// CodeRangeUnknown if no scan has happened yet.
func (v *Value) KnownCodeRange() CodeRange {
	return CodeRange(v.codeRange.Load())
}

// WithEncoding returns a new Value holding the same bytes retagged under a
// different encoding. The classification memo starts fresh, since the code
// range depends on the declared encoding.
func (v *Value) WithEncoding(enc *Encoding) *Value {
	return NewValue(v.bytes, enc)
}
