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
	"github.com/emeraldlang/emerald/go/stats"
)

var (
	statCompatQueryHits = stats.NewCounter(
		"EncodingCompatQueryCacheHits", "compatibility query results served from the memo cache")
	statCompatQueryMisses = stats.NewCounter(
		"EncodingCompatQueryCacheMisses", "compatibility query results computed from scratch")
)

// compatQueryKey identifies a content-bearing compatibility query up to
// everything the outcome depends on: both encodings and both code ranges.
// Emptiness never reaches the cached path, it is handled by the early
// returns.
type compatQueryKey struct {
	left, right           int
	leftRange, rightRange CodeRange
}

// encodingPairKey identifies a content-free compatibility query.
type encodingPairKey struct {
	left, right int
}

// CompatibleValues returns the encoding under which a and b may be
// implicitly combined, or nil when they have none. It never fails:
// incompatibility is a normal result.
//
// The decision is order-sensitive in which rule fires but symmetric in
// outcome. The branch order matters: two values that are both valid but
// non-7-bit under differing encodings must fall through every earlier rule
// before being rejected.
func (r *Registry) CompatibleValues(a, b *Value) *Encoding {
	aEnc, bEnc := a.Encoding(), b.Encoding()

	// Identical encodings are always compatible, whatever the content.
	if aEnc.Equal(bEnc) {
		return aEnc
	}

	if b.IsEmpty() {
		return aEnc
	}
	if a.IsEmpty() {
		if aEnc.IsASCIICompatible() && b.CodeRange() == CodeRange7Bit {
			return aEnc
		}
		return bEnc
	}

	if !aEnc.IsASCIICompatible() || !bEnc.IsASCIICompatible() {
		return nil
	}

	ca, cb := a.CodeRange(), b.CodeRange()

	key := compatQueryKey{left: aEnc.Index(), right: bEnc.Index(), leftRange: ca, rightRange: cb}
	if enc, ok := r.compatQueryCache.Get(key); ok {
		statCompatQueryHits.Add(1)
		return enc
	}
	statCompatQueryMisses.Add(1)

	enc := resolveCodeRanges(aEnc, bEnc, ca, cb)
	r.compatQueryCache.Set(key, enc)
	return enc
}

// resolveCodeRanges applies the content precedence rules for two non-empty
// values under differing, ASCII-compatible encodings.
func resolveCodeRanges(aEnc, bEnc *Encoding, ca, cb CodeRange) *Encoding {
	if ca != cb {
		if ca == CodeRange7Bit {
			return bEnc
		}
		if cb == CodeRange7Bit {
			return aEnc
		}
	}
	if cb == CodeRange7Bit {
		return aEnc
	}
	if ca == CodeRange7Bit {
		return bEnc
	}
	return nil
}

// CompatibleValueEncoding resolves a value against a bare encoding, for
// call sites where the second operand carries an encoding but no content.
func (r *Registry) CompatibleValueEncoding(v *Value, other *Encoding) *Encoding {
	if other == nil {
		return nil
	}
	vEnc := v.Encoding()
	if vEnc.Equal(other) {
		return vEnc
	}
	if !vEnc.IsASCIICompatible() || !other.IsASCIICompatible() {
		return nil
	}
	if other.Equal(r.USASCII()) {
		return vEnc
	}
	if v.CodeRange() == CodeRange7Bit {
		return other
	}
	return nil
}

// CompatibleEncodings resolves two bare encodings with no content
// available. Only identity and the canonical 7-bit-only encoding can prove
// compatibility here; a generic pair of distinct ASCII-compatible
// encodings stays unresolvable by design.
func (r *Registry) CompatibleEncodings(e1, e2 *Encoding) *Encoding {
	if e1 == nil || e2 == nil {
		return nil
	}
	if e1.Equal(e2) {
		return e1
	}

	key := encodingPairKey{left: e1.Index(), right: e2.Index()}
	if enc, ok := r.encodingPairCache.Get(key); ok {
		return enc
	}

	var enc *Encoding
	switch {
	case !e1.IsASCIICompatible() || !e2.IsASCIICompatible():
		enc = nil
	case e2.Equal(r.USASCII()):
		enc = e1
	case e1.Equal(r.USASCII()):
		enc = e2
	}
	r.encodingPairCache.Set(key, enc)
	return enc
}

// CheckCompatible is the only place where incompatibility becomes a
// failure instead of a value. Callers with fallback behavior should use
// CompatibleValues directly.
func (r *Registry) CheckCompatible(a, b *Value) (*Encoding, error) {
	if enc := r.CompatibleValues(a, b); enc != nil {
		return enc, nil
	}
	return nil, &CompatibilityError{Left: a.Encoding(), Right: b.Encoding()}
}

// CheckCompatibleEncodings is CheckCompatible for content-free operands.
func (r *Registry) CheckCompatibleEncodings(e1, e2 *Encoding) (*Encoding, error) {
	if enc := r.CompatibleEncodings(e1, e2); enc != nil {
		return enc, nil
	}
	return nil, &CompatibilityError{Left: e1, Right: e2}
}
