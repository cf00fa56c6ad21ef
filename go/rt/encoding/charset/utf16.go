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

// 0xD800-0xDC00 encodes the high 10 bits of a pair.
// 0xDC00-0xE000 encodes the low 10 bits of a pair.
// The value is those 20 bits plus 0x10000.
const (
	surr1    = 0xD800
	surr2    = 0xDC00
	surr3    = 0xE000
	surrSelf = 0x10000
)

func decodeUTF16(p []byte, big bool) (rune, int) {
	if len(p) < 2 {
		return RuneError, 0
	}

	var r1 uint16
	if big {
		r1 = uint16(p[1]) | uint16(p[0])<<8
	} else {
		r1 = uint16(p[0]) | uint16(p[1])<<8
	}
	if r1 < surr1 || surr3 <= r1 {
		return rune(r1), 2
	}
	if r1 >= surr2 {
		// Unpaired low surrogate.
		return RuneError, 1
	}

	if len(p) < 4 {
		return RuneError, 0
	}
	var r2 uint16
	if big {
		r2 = uint16(p[3]) | uint16(p[2])<<8
	} else {
		r2 = uint16(p[2]) | uint16(p[3])<<8
	}
	if surr2 <= r2 && r2 < surr3 {
		return (rune(r1)-surr1)<<10 | (rune(r2) - surr2) + surrSelf, 4
	}

	return RuneError, 1
}

// UTF16BE is big-endian UTF-16 with surrogate pair validation.
type UTF16BE struct{}

func (UTF16BE) Name() string                     { return "UTF-16BE" }
func (UTF16BE) SupportsSupplementaryChars() bool { return true }

func (UTF16BE) DecodeRune(p []byte) (rune, int) {
	return decodeUTF16(p, true)
}

// UTF16LE is little-endian UTF-16 with surrogate pair validation.
type UTF16LE struct{}

func (UTF16LE) Name() string                     { return "UTF-16LE" }
func (UTF16LE) SupportsSupplementaryChars() bool { return true }

func (UTF16LE) DecodeRune(p []byte) (rune, int) {
	return decodeUTF16(p, false)
}
