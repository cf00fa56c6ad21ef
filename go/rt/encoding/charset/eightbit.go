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

import (
	"golang.org/x/text/encoding/charmap"
)

// Binary treats every byte as one character. Nothing is ever malformed.
type Binary struct{}

func (Binary) Name() string                     { return "ASCII-8BIT" }
func (Binary) SupportsSupplementaryChars() bool { return false }

func (Binary) DecodeRune(p []byte) (rune, int) {
	if len(p) < 1 {
		return RuneError, 0
	}
	return rune(p[0]), 1
}

// ASCII is strict 7-bit ASCII; bytes at or above 0x80 are malformed.
type ASCII struct{}

func (ASCII) Name() string                     { return "US-ASCII" }
func (ASCII) SupportsSupplementaryChars() bool { return false }

func (ASCII) DecodeRune(p []byte) (rune, int) {
	if len(p) < 1 {
		return RuneError, 0
	}
	if p[0] >= 0x80 {
		return RuneError, 1
	}
	return rune(p[0]), 1
}

// EightBit is a single-byte charset backed by an x/text charmap table.
// Bytes the table leaves unmapped are malformed.
type EightBit struct {
	name string
	mib  *charmap.Charmap
}

// NewEightBit wraps a charmap table under the given canonical name.
func NewEightBit(name string, m *charmap.Charmap) *EightBit {
	return &EightBit{name: name, mib: m}
}

func (e *EightBit) Name() string                     { return e.name }
func (e *EightBit) SupportsSupplementaryChars() bool { return false }

func (e *EightBit) DecodeRune(p []byte) (rune, int) {
	if len(p) < 1 {
		return RuneError, 0
	}
	// DecodeByte returns RuneError for bytes with no mapping, which is
	// exactly the broken-character convention.
	return e.mib.DecodeByte(p[0]), 1
}
