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
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emeraldlang/emerald/go/rt/encoding/charset"
	"github.com/emeraldlang/emerald/go/rt/rterrors"
)

func TestLookupByName(t *testing.T) {
	r := NewRegistry()

	utf8 := r.LookupByName("UTF-8")
	require.NotNil(t, utf8)
	assert.Equal(t, "UTF-8", utf8.Name())
	assert.True(t, utf8.IsASCIICompatible())
	assert.False(t, utf8.IsDummy())

	// Name lookup is case-insensitive and covers aliases.
	assert.True(t, utf8.Equal(r.LookupByName("utf-8")))
	assert.True(t, utf8.Equal(r.LookupByName("cp65001")))
	assert.True(t, r.LookupByName("BINARY").Equal(r.LookupByName("ascii-8bit")))

	assert.Nil(t, r.LookupByName("NO-SUCH-ENCODING"))
}

func TestLookupByIndex(t *testing.T) {
	r := NewRegistry()

	for i, enc := range r.List() {
		assert.Equal(t, i, enc.Index())
		assert.True(t, enc.Equal(r.LookupByIndex(i)))
	}

	assert.Nil(t, r.LookupByIndex(-1))
	assert.Nil(t, r.LookupByIndex(r.Len()))
}

func TestListIsStableAndSorted(t *testing.T) {
	r := NewRegistry()

	first := r.List()
	second := r.List()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}

	// Mutating the returned slice must not affect the registry.
	first[0] = nil
	assert.NotNil(t, r.List()[0])
}

func TestRegisterCollision(t *testing.T) {
	r := NewRegistry()

	_, err := r.Register("utf-8", charset.UTF8{}, true, false)
	var already *AlreadyRegisteredError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, "utf-8", already.Name)
	assert.Equal(t, rterrors.AlreadyExists, rterrors.ErrCode(err))

	// Colliding with an alias is just as fatal.
	_, err = r.Register("Binary", charset.Binary{}, true, false)
	assert.ErrorAs(t, err, &already)
}

func TestAddAlias(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")

	require.NoError(t, r.AddAlias("UTF8-STRICT", utf8))
	assert.True(t, utf8.Equal(r.LookupByName("utf8-strict")))

	// Aliases and canonical names share one namespace.
	err := r.AddAlias("US-ASCII", utf8)
	var already *AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)

	err = r.AddAlias("BINARY", utf8)
	assert.ErrorAs(t, err, &already)

	assert.Error(t, r.AddAlias("orphan", nil))
}

func TestEachAlias(t *testing.T) {
	r := NewRegistry()

	seen := make(map[string]string)
	r.EachAlias(func(alias string, target *Encoding) bool {
		seen[alias] = target.Name()
		return true
	})

	assert.Equal(t, "ASCII-8BIT", seen["BINARY"])
	assert.Equal(t, "US-ASCII", seen["ASCII"])
	assert.Equal(t, "Shift_JIS", seen["SJIS"])

	// Early termination.
	count := 0
	r.EachAlias(func(string, *Encoding) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestEachAliasOrder(t *testing.T) {
	r := NewRegistry()

	var first []string
	r.EachAlias(func(alias string, _ *Encoding) bool {
		first = append(first, alias)
		return len(first) < 5
	})

	// Registration order, original spelling.
	want := []string{"BINARY", "CP65001", "ASCII", "ANSI_X3.4-1968", "646"}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("alias order mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaults(t *testing.T) {
	r := NewRegistry()

	utf8 := r.LookupByName("UTF-8")
	assert.True(t, utf8.Equal(r.Default(DefaultExternal)))
	assert.True(t, utf8.Equal(r.Default(DefaultLocale)))
	assert.Nil(t, r.Default(DefaultInternal))

	latin1 := r.LookupByName("ISO-8859-1")
	require.NoError(t, r.SetDefault(DefaultExternal, latin1))
	assert.True(t, latin1.Equal(r.Default(DefaultExternal)))

	require.NoError(t, r.SetDefault(DefaultInternal, utf8))
	assert.True(t, utf8.Equal(r.Default(DefaultInternal)))
	require.NoError(t, r.SetDefault(DefaultInternal, nil))
	assert.Nil(t, r.Default(DefaultInternal))
}

func TestExternalDefaultCannotBeUnset(t *testing.T) {
	r := NewRegistry()
	before := r.Default(DefaultExternal)

	err := r.SetDefault(DefaultExternal, nil)
	require.Error(t, err)
	assert.Equal(t, rterrors.InvalidArgument, rterrors.ErrCode(err))

	// The slot is untouched.
	assert.True(t, before.Equal(r.Default(DefaultExternal)))
}

func TestDefaultByName(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")

	for _, name := range []string{"external", "locale", "filesystem", "EXTERNAL"} {
		enc, err := r.DefaultByName(name)
		require.NoError(t, err, name)
		assert.True(t, utf8.Equal(enc), name)
	}

	enc, err := r.DefaultByName("internal")
	require.NoError(t, err)
	assert.Nil(t, enc)

	_, err = r.DefaultByName("bogus")
	require.Error(t, err)
	assert.Equal(t, rterrors.NotFound, rterrors.ErrCode(err))
}

func TestLocaleCharmap(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "UTF-8", r.LocaleCharmap())

	require.NoError(t, r.SetDefault(DefaultLocale, r.LookupByName("Shift_JIS")))
	assert.Equal(t, "Shift_JIS", r.LocaleCharmap())
}

func TestReplicate(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")
	before := r.Len()

	replica, err := r.Replicate(utf8, "MY-UTF8")
	require.NoError(t, err)
	assert.Equal(t, "MY-UTF8", replica.Name())
	assert.Equal(t, before, replica.Index())
	assert.Equal(t, utf8.IsASCIICompatible(), replica.IsASCIICompatible())
	assert.Equal(t, utf8.IsDummy(), replica.IsDummy())
	assert.False(t, replica.Equal(utf8))
	assert.True(t, replica.Equal(r.LookupByName("my-utf8")))

	// Index distinct from every previously registered index.
	for _, enc := range r.List()[:before] {
		assert.NotEqual(t, enc.Index(), replica.Index())
	}
}

func TestReplicateCollisionLeavesRegistryUnchanged(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")

	_, err := r.Replicate(utf8, "MY-UTF8")
	require.NoError(t, err)
	snapshot := r.List()

	_, err = r.Replicate(utf8, "my-utf8")
	var already *AlreadyRegisteredError
	require.ErrorAs(t, err, &already)

	after := r.List()
	require.Equal(t, len(snapshot), len(after))
	for i := range snapshot {
		assert.True(t, snapshot[i].Equal(after[i]))
	}

	_, err = r.Replicate(nil, "whatever")
	assert.Error(t, err)
	assert.False(t, errors.As(err, &already))
}

func TestReplicatedDummyKeepsFlags(t *testing.T) {
	r := NewRegistry()
	dummy := r.LookupByName("ISO-2022-JP")
	require.True(t, dummy.IsDummy())

	replica, err := r.Replicate(dummy, "MY-2022")
	require.NoError(t, err)
	assert.True(t, replica.IsDummy())
	assert.False(t, replica.IsASCIICompatible())
}

func TestConcurrentReadsAndMutations(t *testing.T) {
	r := NewRegistry()
	utf8 := r.LookupByName("UTF-8")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Replicate(utf8, fmt.Sprintf("REPLICA-%d", i))
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				if enc := r.LookupByName("UTF-8"); enc == nil {
					t.Error("UTF-8 disappeared during concurrent access")
					return
				}
				for _, enc := range r.List() {
					if enc == nil {
						t.Error("List returned a hole")
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	// All replicas landed, with distinct indices.
	seen := make(map[int]bool)
	for _, enc := range r.List() {
		require.False(t, seen[enc.Index()])
		seen[enc.Index()] = true
	}
	for i := 0; i < 8; i++ {
		assert.NotNil(t, r.LookupByName(fmt.Sprintf("replica-%d", i)))
	}
}
