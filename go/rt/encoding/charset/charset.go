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

// Package charset implements the character boundary rules for every
// encoding the runtime ships. A Charset knows how to step through a byte
// sequence one character at a time; everything above this package works in
// whole characters and never inspects raw bytes itself.
package charset

import "unicode/utf8"

// RuneError is the replacement character, returned by DecodeRune for
// malformed input.
const RuneError = utf8.RuneError

// Charset steps through byte sequences under one encoding's rules.
//
// DecodeRune decodes the first character in p and returns it with its width
// in bytes. For malformed or truncated input it returns (RuneError, w) with
// w <= 1. Implementations that decode a genuine U+FFFD must report its real
// width, which is always larger than 1, so (RuneError, <=1) unambiguously
// means a broken character.
//
// Charsets for non-Unicode encodings may return native codepoint values
// rather than Unicode scalar values; callers that only walk character
// boundaries do not care.
type Charset interface {
	Name() string
	DecodeRune(p []byte) (rune, int)
	SupportsSupplementaryChars() bool
}

// IsBroken reports whether a DecodeRune result denotes a malformed
// character rather than a real decode of U+FFFD.
func IsBroken(r rune, width int) bool {
	return r == RuneError && width <= 1
}

// Validate reports whether p consists entirely of well-formed characters
// under cs. Charsets with a native validator take the fast path.
func Validate(cs Charset, p []byte) bool {
	if fast, ok := cs.(interface{ Validate([]byte) bool }); ok {
		return fast.Validate(p)
	}
	for len(p) > 0 {
		r, width := cs.DecodeRune(p)
		if IsBroken(r, width) {
			return false
		}
		p = p[width:]
	}
	return true
}

// Length returns the number of characters in p, counting each malformed
// byte as one character.
func Length(cs Charset, p []byte) int {
	count := 0
	for len(p) > 0 {
		_, width := cs.DecodeRune(p)
		if width == 0 {
			width = 1
		}
		p = p[width:]
		count++
	}
	return count
}

// IsASCII reports whether every byte of p is below 0x80.
func IsASCII(p []byte) bool {
	for _, b := range p {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
