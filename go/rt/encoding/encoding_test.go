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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodingEqual(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")
	ascii := r.LookupByName("US-ASCII")

	assert.True(t, utf8.Equal(utf8))
	assert.False(t, utf8.Equal(ascii))

	var nilEnc *Encoding
	assert.True(t, nilEnc.Equal(nil))
	assert.False(t, nilEnc.Equal(utf8))
	assert.False(t, utf8.Equal(nil))
}

func TestEncodingAccessors(t *testing.T) {
	r := NewRegistry()

	sjis := r.LookupByName("Shift_JIS")
	require.NotNil(t, sjis)
	assert.Equal(t, "Shift_JIS", sjis.Name())
	assert.Equal(t, "Shift_JIS", sjis.String())
	assert.True(t, sjis.IsASCIICompatible())
	assert.False(t, sjis.IsDummy())
	assert.NotNil(t, sjis.Charset())

	utf7 := r.LookupByName("UTF-7")
	require.NotNil(t, utf7)
	assert.True(t, utf7.IsDummy())
	assert.False(t, utf7.IsASCIICompatible())
}
