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
	"strings"
	"sync"

	"github.com/emeraldlang/emerald/go/cache"
	"github.com/emeraldlang/emerald/go/rt/encoding/charset"
	"github.com/emeraldlang/emerald/go/rt/log"
	"github.com/emeraldlang/emerald/go/rt/rterrors"
	"github.com/emeraldlang/emerald/go/stats"
)

var (
	statRegistered = stats.NewCounter(
		"EncodingsRegistered", "cumulative count of encodings registered across all registries")
	statReplicated = stats.NewCounter(
		"EncodingsReplicated", "cumulative count of encodings created by replication")
)

// DefaultSlot names one of the process-wide default encoding assignments.
type DefaultSlot int

const (
	// DefaultExternal is the assumed encoding of data crossing the
	// process boundary. Once set it can never be cleared.
	DefaultExternal DefaultSlot = iota

	// DefaultInternal, when set, is the encoding data is converted to on
	// the way in. May be unset.
	DefaultInternal

	// DefaultLocale is the encoding implied by the process locale.
	DefaultLocale
)

func (s DefaultSlot) String() string {
	switch s {
	case DefaultExternal:
		return "external"
	case DefaultInternal:
		return "internal"
	case DefaultLocale:
		return "locale"
	default:
		return "invalid"
	}
}

type aliasEntry struct {
	name   string
	target *Encoding
}

// Registry is the table of known encodings. It is read far more often than
// written: lookups take a read lock, mutations take the write lock, and no
// reader can ever observe a partially applied mutation.
//
// Names and aliases share one case-insensitive namespace. Indices are
// assigned append-only and never reused.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*Encoding // normalized canonical names and aliases
	aliases  []aliasEntry         // insertion order, original spelling
	byIndex  []*Encoding
	external *Encoding
	internal *Encoding
	locale   *Encoding

	// usASCII is the canonical 7-bit-only encoding, consulted by the
	// compatibility rules for operands without content.
	usASCII *Encoding

	compatQueryCache  cache.Cache[compatQueryKey, *Encoding]
	encodingPairCache cache.Cache[encodingPairKey, *Encoding]
}

func newEmptyRegistry(compatQuerySize, encodingPairSize int) *Registry {
	return &Registry{
		byName:            make(map[string]*Encoding),
		compatQueryCache:  cache.New[compatQueryKey, *Encoding](compatQuerySize),
		encodingPairCache: cache.New[encodingPairKey, *Encoding](encodingPairSize),
	}
}

func normalizeName(name string) string {
	return strings.ToLower(name)
}

// Register adds a new encoding under the given canonical name, assigning
// the next free index. It fails with AlreadyRegisteredError if the name
// collides with any existing name or alias.
func (r *Registry) Register(name string, cs charset.Charset, asciiCompatible, dummy bool) (*Encoding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registerLocked(name, cs, asciiCompatible, dummy)
}

func (r *Registry) registerLocked(name string, cs charset.Charset, asciiCompatible, dummy bool) (*Encoding, error) {
	if _, taken := r.byName[normalizeName(name)]; taken {
		return nil, &AlreadyRegisteredError{Name: name}
	}
	enc := &Encoding{
		name:            name,
		index:           len(r.byIndex),
		asciiCompatible: asciiCompatible,
		dummy:           dummy,
		cs:              cs,
	}
	r.byIndex = append(r.byIndex, enc)
	r.byName[normalizeName(name)] = enc
	statRegistered.Add(1)
	return enc, nil
}

// AddAlias makes alias resolve to target. The alias occupies the same
// namespace as canonical names.
func (r *Registry) AddAlias(alias string, target *Encoding) error {
	if target == nil {
		return rterrors.New(rterrors.InvalidArgument, "alias target must be a registered encoding")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[normalizeName(alias)]; taken {
		return &AlreadyRegisteredError{Name: alias}
	}
	r.byName[normalizeName(alias)] = target
	r.aliases = append(r.aliases, aliasEntry{name: alias, target: target})
	return nil
}

// LookupByName returns the encoding registered under name, which may be a
// canonical name or an alias, compared case-insensitively. Returns nil if
// nothing is registered under it; absence is an expected outcome and never
// an error.
func (r *Registry) LookupByName(name string) *Encoding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[normalizeName(name)]
}

// LookupByIndex returns the encoding with the given index, or nil.
func (r *Registry) LookupByIndex(index int) *Encoding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.byIndex) {
		return nil
	}
	return r.byIndex[index]
}

// List returns all encodings in ascending index order.
func (r *Registry) List() []*Encoding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Encoding, len(r.byIndex))
	copy(out, r.byIndex)
	return out
}

// Len returns the number of registered encodings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byIndex)
}

// EachAlias calls fn for every alias in registration order, with the
// alias's original spelling. Iteration stops early if fn returns false.
func (r *Registry) EachAlias(fn func(alias string, target *Encoding) bool) {
	r.mu.RLock()
	aliases := make([]aliasEntry, len(r.aliases))
	copy(aliases, r.aliases)
	r.mu.RUnlock()

	for _, a := range aliases {
		if !fn(a.name, a.target) {
			return
		}
	}
}

// Default returns the encoding held by the given slot, or nil if the slot
// is unset.
func (r *Registry) Default(slot DefaultSlot) *Encoding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	switch slot {
	case DefaultExternal:
		return r.external
	case DefaultInternal:
		return r.internal
	case DefaultLocale:
		return r.locale
	default:
		return nil
	}
}

// SetDefault assigns a slot. Clearing the external default is rejected:
// once the process has an external encoding there is no meaningful "none".
func (r *Registry) SetDefault(slot DefaultSlot, enc *Encoding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch slot {
	case DefaultExternal:
		if enc == nil {
			return errExternalUnset
		}
		r.external = enc
	case DefaultInternal:
		r.internal = enc
	case DefaultLocale:
		r.locale = enc
	default:
		return rterrors.Errorf(rterrors.InvalidArgument, "unknown default encoding slot %d", int(slot))
	}
	return nil
}

// DefaultByName resolves a slot by its user-facing name. "filesystem" is
// an alias for the locale slot. The returned encoding may be nil for an
// unset slot; an unknown slot name is an error.
func (r *Registry) DefaultByName(name string) (*Encoding, error) {
	switch normalizeName(name) {
	case "external":
		return r.Default(DefaultExternal), nil
	case "internal":
		return r.Default(DefaultInternal), nil
	case "locale", "filesystem":
		return r.Default(DefaultLocale), nil
	default:
		return nil, rterrors.Errorf(rterrors.NotFound, "unknown default encoding slot %q", name)
	}
}

// LocaleCharmap returns the name of the locale encoding, or "" when the
// locale slot is unset.
func (r *Registry) LocaleCharmap() string {
	enc := r.Default(DefaultLocale)
	if enc == nil {
		return ""
	}
	return enc.Name()
}

// USASCII returns the canonical 7-bit-only encoding.
func (r *Registry) USASCII() *Encoding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.usASCII
}

// Replicate creates a new encoding that behaves exactly like source under
// a new name: same charset, same flags, fresh index. It fails without
// mutating the registry if newName is already taken.
func (r *Registry) Replicate(source *Encoding, newName string) (*Encoding, error) {
	if source == nil {
		return nil, rterrors.New(rterrors.InvalidArgument, "replication source must be a registered encoding")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	enc, err := r.registerLocked(newName, source.cs, source.asciiCompatible, source.dummy)
	if err != nil {
		return nil, err
	}
	statReplicated.Add(1)
	log.Infof("replicated encoding %q as %q (index %d)", source.Name(), newName, enc.Index())
	return enc, nil
}
