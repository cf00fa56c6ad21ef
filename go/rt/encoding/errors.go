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
	"fmt"

	"github.com/emeraldlang/emerald/go/rt/rterrors"
)

// AlreadyRegisteredError is returned by Register, AddAlias and Replicate
// when the requested name collides, case-insensitively, with an existing
// canonical name or alias. The registry is left unchanged.
type AlreadyRegisteredError struct {
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("encoding %q is already registered", e.Name)
}

// ErrorCode implements the rterrors coded interface.
func (e *AlreadyRegisteredError) ErrorCode() rterrors.Code {
	return rterrors.AlreadyExists
}

// CompatibilityError is returned by the CheckCompatible wrappers when two
// operands have no common encoding. It carries both operand encodings for
// diagnostics; the underlying resolvers never fail, they return nil.
type CompatibilityError struct {
	Left, Right *Encoding
}

func (e *CompatibilityError) Error() string {
	return fmt.Sprintf("incompatible character encodings: %s and %s", e.Left, e.Right)
}

// ErrorCode implements the rterrors coded interface.
func (e *CompatibilityError) ErrorCode() rterrors.Code {
	return rterrors.FailedPrecondition
}

// errExternalUnset rejects clearing the external default. The message
// matches the one user code observes.
var errExternalUnset = rterrors.New(rterrors.InvalidArgument, "default external can not be nil")
