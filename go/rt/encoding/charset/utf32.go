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

package charset

import "unicode/utf8"

func decodeUTF32(p []byte, big bool) (rune, int) {
	if len(p) < 4 {
		return RuneError, 0
	}
	var r rune
	if big {
		r = (rune(p[0]) << 24) | (rune(p[1]) << 16) | (rune(p[2]) << 8) | rune(p[3])
	} else {
		r = (rune(p[3]) << 24) | (rune(p[2]) << 16) | (rune(p[1]) << 8) | rune(p[0])
	}
	if r > utf8.MaxRune || (surr1 <= r && r < surr3) {
		return RuneError, 1
	}
	return r, 4
}

// UTF32BE is big-endian UTF-32 restricted to Unicode scalar values.
type UTF32BE struct{}

func (UTF32BE) Name() string                     { return "UTF-32BE" }
func (UTF32BE) SupportsSupplementaryChars() bool { return true }

func (UTF32BE) DecodeRune(p []byte) (rune, int) {
	return decodeUTF32(p, true)
}

// UTF32LE is little-endian UTF-32 restricted to Unicode scalar values.
type UTF32LE struct{}

func (UTF32LE) Name() string                     { return "UTF-32LE" }
func (UTF32LE) SupportsSupplementaryChars() bool { return true }

func (UTF32LE) DecodeRune(p []byte) (rune, int) {
	return decodeUTF32(p, false)
}
