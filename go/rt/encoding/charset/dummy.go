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

// Dummy backs encodings that are registered but not behaviorally
// implemented. Every byte counts as one opaque character, so content under
// a dummy encoding can never classify as broken.
type Dummy struct {
	name string
}

// NewDummy returns a placeholder charset with the given name.
func NewDummy(name string) *Dummy {
	return &Dummy{name: name}
}

func (d *Dummy) Name() string                     { return d.name }
func (d *Dummy) SupportsSupplementaryChars() bool { return false }

func (d *Dummy) DecodeRune(p []byte) (rune, int) {
	if len(p) < 1 {
		return RuneError, 0
	}
	return rune(p[0]), 1
}
