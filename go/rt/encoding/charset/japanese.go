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

// The Japanese charsets validate byte structure and return native
// codepoints (lead<<8|trail). Mapping to Unicode is a transcoding concern
// and deliberately not done here.

// ShiftJIS implements the Shift_JIS byte structure, including the CP932
// extended lead range.
type ShiftJIS struct{}

func (ShiftJIS) Name() string                     { return "Shift_JIS" }
func (ShiftJIS) SupportsSupplementaryChars() bool { return false }

func (ShiftJIS) DecodeRune(p []byte) (rune, int) {
	if len(p) < 1 {
		return RuneError, 0
	}
	b0 := p[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0 >= 0xA1 && b0 <= 0xDF:
		// Halfwidth katakana.
		return rune(b0), 1
	case (b0 >= 0x81 && b0 <= 0x9F) || (b0 >= 0xE0 && b0 <= 0xFC):
		if len(p) < 2 {
			return RuneError, 1
		}
		b1 := p[1]
		if (b1 >= 0x40 && b1 <= 0x7E) || (b1 >= 0x80 && b1 <= 0xFC) {
			return rune(b0)<<8 | rune(b1), 2
		}
		return RuneError, 1
	default:
		return RuneError, 1
	}
}

// EUCJP implements the EUC-JP byte structure: JIS X 0208 pairs, SS2-prefixed
// halfwidth katakana, and SS3-prefixed JIS X 0212 triples.
type EUCJP struct{}

func (EUCJP) Name() string                     { return "EUC-JP" }
func (EUCJP) SupportsSupplementaryChars() bool { return false }

func (EUCJP) DecodeRune(p []byte) (rune, int) {
	if len(p) < 1 {
		return RuneError, 0
	}
	b0 := p[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0 == 0x8E:
		if len(p) < 2 {
			return RuneError, 1
		}
		if p[1] >= 0xA1 && p[1] <= 0xDF {
			return rune(b0)<<8 | rune(p[1]), 2
		}
		return RuneError, 1
	case b0 == 0x8F:
		if len(p) < 3 {
			return RuneError, 1
		}
		if eucTrail(p[1]) && eucTrail(p[2]) {
			return rune(p[1])<<8 | rune(p[2]), 3
		}
		return RuneError, 1
	case eucTrail(b0):
		if len(p) < 2 {
			return RuneError, 1
		}
		if eucTrail(p[1]) {
			return rune(b0)<<8 | rune(p[1]), 2
		}
		return RuneError, 1
	default:
		return RuneError, 1
	}
}

func eucTrail(b byte) bool {
	return b >= 0xA1 && b <= 0xFE
}
