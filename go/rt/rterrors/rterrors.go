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

// Package rterrors provides the error type used throughout the runtime.
//
// Every error carries a Code describing its broad category. Errors created
// with New or Errorf record the code directly; errors created with Wrap or
// Wrapf inherit the code of their cause. ErrCode(err) walks the wrapping
// chain and returns the first code it finds, or Unknown.
//
// Types outside this package can participate by implementing
//
//	ErrorCode() Code
//
// which ErrCode(err) honors at any depth of the chain.
package rterrors

import (
	"errors"
	"fmt"
)

// Code classifies an error. The set is intentionally small; it mirrors the
// outcomes the runtime can act on, not every possible failure.
type Code int

const (
	// Unknown is the code of any error that did not originate in this
	// package and does not implement ErrorCode.
	Unknown Code = iota

	// InvalidArgument indicates the caller supplied an argument that can
	// never be valid, regardless of system state.
	InvalidArgument

	// AlreadyExists indicates an attempt to create something under a name
	// or identity that is already taken.
	AlreadyExists

	// NotFound indicates the named entity does not exist.
	NotFound

	// FailedPrecondition indicates the operation was rejected because the
	// system is not in a state required for its execution.
	FailedPrecondition
)

func (c Code) String() string {
	switch c {
	case InvalidArgument:
		return "invalid argument"
	case AlreadyExists:
		return "already exists"
	case NotFound:
		return "not found"
	case FailedPrecondition:
		return "failed precondition"
	default:
		return "unknown"
	}
}

// coded is implemented by errors that carry an explicit Code.
type coded interface {
	ErrorCode() Code
}

type fundamental struct {
	code Code
	msg  string
}

func (f *fundamental) Error() string   { return f.msg }
func (f *fundamental) ErrorCode() Code { return f.code }

// New returns an error with the given code and message.
func New(code Code, msg string) error {
	return &fundamental{code: code, msg: msg}
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error. The %w verb is supported; the resulting error
// still reports the given code, not the code of the wrapped error.
func Errorf(code Code, format string, args ...any) error {
	return &withCode{code: code, err: fmt.Errorf(format, args...)}
}

type withCode struct {
	code Code
	err  error
}

func (w *withCode) Error() string   { return w.err.Error() }
func (w *withCode) Unwrap() error   { return errors.Unwrap(w.err) }
func (w *withCode) ErrorCode() Code { return w.code }

// Wrap annotates err with a message, preserving err's code. Returns nil if
// err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrapping{err: err, msg: msg}
}

// Wrapf is Wrap with formatting.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapping{err: err, msg: fmt.Sprintf(format, args...)}
}

type wrapping struct {
	err error
	msg string
}

func (w *wrapping) Error() string { return w.msg + ": " + w.err.Error() }
func (w *wrapping) Unwrap() error { return w.err }

// ErrCode returns the code of an error, unwrapping as far as needed. A nil
// error has no code and reports Unknown.
func ErrCode(err error) Code {
	for err != nil {
		if c, ok := err.(coded); ok {
			return c.ErrorCode()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}
