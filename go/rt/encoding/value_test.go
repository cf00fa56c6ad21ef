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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueBasics(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")

	v := NewValue([]byte("héllo"), utf8)
	assert.Equal(t, []byte("héllo"), v.Bytes())
	assert.True(t, utf8.Equal(v.Encoding()))
	assert.Equal(t, 6, v.Len())
	assert.False(t, v.IsEmpty())

	empty := NewValue(nil, utf8)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
}

func TestValueCodeRangeMemo(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")

	v := NewValue([]byte("héllo"), utf8)
	assert.Equal(t, CodeRangeUnknown, v.KnownCodeRange())

	// First access classifies, later accesses reuse the memo.
	assert.Equal(t, CodeRangeValid, v.CodeRange())
	assert.Equal(t, CodeRangeValid, v.KnownCodeRange())
	assert.Equal(t, CodeRangeValid, v.CodeRange())
}

func TestValueCodeRangeByContent(t *testing.T) {
	r := NewRegistry()

	testCases := []struct {
		name  string
		bytes []byte
		enc   string
		want  CodeRange
	}{
		{"empty is 7-bit", nil, "UTF-8", CodeRange7Bit},
		{"plain ascii", []byte("hello"), "UTF-8", CodeRange7Bit},
		{"multibyte utf-8", []byte("héllo"), "UTF-8", CodeRangeValid},
		{"truncated utf-8", []byte{0xC3}, "UTF-8", CodeRangeBroken},
		{"high byte in us-ascii", []byte{0xE9}, "US-ASCII", CodeRangeBroken},
		{"high byte in binary", []byte{0xE9}, "ASCII-8BIT", CodeRangeValid},
		{"ascii bytes in utf-16be", []byte("hi"), "UTF-16BE", CodeRange7Bit},
		// The 7-bit rule looks at bytes only, so an all-low-byte sequence
		// classifies as 7-bit even where UTF-16 would call it truncated.
		{"odd length low bytes in utf-16be", []byte{0x00}, "UTF-16BE", CodeRange7Bit},
		{"unpaired surrogate in utf-16be", []byte{0xDE, 0x0A}, "UTF-16BE", CodeRangeBroken},
		{"truncated pair in utf-16be", []byte{0xD8, 0x3D}, "UTF-16BE", CodeRangeBroken},
		{"dummy never breaks", []byte{0xFF, 0xFE}, "ISO-2022-JP", CodeRangeValid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enc := r.LookupByName(tc.enc)
			require.NotNil(t, enc)
			v := NewValue(tc.bytes, enc)
			assert.Equal(t, tc.want, v.CodeRange())
		})
	}
}

func TestValueCodeRangeConcurrentFirstAccess(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")
	v := NewValue([]byte("héllo wörld"), utf8)

	var wg sync.WaitGroup
	results := make([]CodeRange, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = v.CodeRange()
		}()
	}
	wg.Wait()

	for _, cr := range results {
		assert.Equal(t, CodeRangeValid, cr)
	}
}

func TestWithEncodingResetsMemo(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")
	ascii := r.LookupByName("US-ASCII")

	v := NewValue([]byte{0xC3, 0xA9}, utf8)
	require.Equal(t, CodeRangeValid, v.CodeRange())

	// Same bytes, different encoding, fresh classification.
	w := v.WithEncoding(ascii)
	assert.Equal(t, CodeRangeUnknown, w.KnownCodeRange())
	assert.Equal(t, CodeRangeBroken, w.CodeRange())

	// The original is untouched.
	assert.Equal(t, CodeRangeValid, v.KnownCodeRange())
	assert.Equal(t, v.Bytes(), w.Bytes())
}

func TestCodeRangeString(t *testing.T) {
	assert.Equal(t, "unknown", CodeRangeUnknown.String())
	assert.Equal(t, "7-bit", CodeRange7Bit.String())
	assert.Equal(t, "valid", CodeRangeValid.String())
	assert.Equal(t, "broken", CodeRangeBroken.String())
}
