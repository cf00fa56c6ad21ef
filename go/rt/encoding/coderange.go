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
	"github.com/emeraldlang/emerald/go/rt/encoding/charset"
)

// CodeRange is the coarse classification of a byte sequence's content
// relative to its declared encoding.
type CodeRange uint32

const (
	// CodeRangeUnknown means the classification has not been computed yet.
	CodeRangeUnknown CodeRange = iota

	// CodeRange7Bit means every byte is below 0x80.
	CodeRange7Bit

	// CodeRangeValid means the content contains bytes at or above 0x80
	// and is well-formed under its declared encoding.
	CodeRangeValid

	// CodeRangeBroken means the content contains malformed byte sequences
	// under its declared encoding.
	CodeRangeBroken
)

func (cr CodeRange) String() string {
	switch cr {
	case CodeRange7Bit:
		return "7-bit"
	case CodeRangeValid:
		return "valid"
	case CodeRangeBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// ScanCodeRange classifies p under the given charset. Pure: same input,
// same result, no failure mode.
func ScanCodeRange(p []byte, cs charset.Charset) CodeRange {
	if charset.IsASCII(p) {
		return CodeRange7Bit
	}
	if charset.Validate(cs, p) {
		return CodeRangeValid
	}
	return CodeRangeBroken
}
