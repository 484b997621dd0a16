/*
Copyright 2026 The Unicore Authors.

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

// Package uerrors provides code-carrying errors for unicore.
//
// Every error surfaced by the library carries a Code. Use New or Errorf to
// create one, Wrap or Wrapf to add context while keeping the code of the
// wrapped error, and Code to read it back:
//
//	if uerrors.Code(err) == uerrors.InvalidArgument {
//		...
//	}
//
// Errors also match the sentinel values with errors.Is:
//
//	errors.Is(err, uerrors.ErrData)
package uerrors

import (
	"errors"
	"fmt"

	uerr "unicore.io/unicore/go/errors"
)

// ErrorCode classifies an error.
type ErrorCode int

const (
	// OK is returned by Code for a nil error.
	OK ErrorCode = iota
	// Unknown is the code of errors that were not created by this package.
	Unknown
	// InvalidArgument means the caller passed a value outside the documented
	// domain: a code point above U+10FFFF, a range with start > end, an
	// unrecognized enumeration discriminant.
	InvalidArgument
	// DataError means a data table is missing, corrupt or incompatible.
	DataError
	// NotFound means a named resource does not exist in a data source.
	NotFound
	// Internal means an invariant of the library itself was broken.
	Internal
)

var codeNames = map[ErrorCode]string{
	OK:              "OK",
	Unknown:         "UNKNOWN",
	InvalidArgument: "INVALID_ARGUMENT",
	DataError:       "DATA_ERROR",
	NotFound:        "NOT_FOUND",
	Internal:        "INTERNAL",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Sentinels for use with errors.Is. Any error carrying the same code matches.
var (
	ErrInvalidArgument error = sentinel(InvalidArgument)
	ErrData            error = sentinel(DataError)
	ErrNotFound        error = sentinel(NotFound)
)

type sentinel ErrorCode

func (s sentinel) Error() string { return ErrorCode(s).String() }

type codedError struct {
	code  ErrorCode
	msg   string
	cause error

	// chained errors print the message of cause after msg.
	chained bool
}

func (e *codedError) Error() string {
	if e.cause == nil || !e.chained {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *codedError) Unwrap() error { return e.cause }

func (e *codedError) Is(target error) bool {
	s, ok := target.(sentinel)
	return ok && ErrorCode(s) == e.code
}

// New returns an error with the given code and message.
func New(code ErrorCode, message string) error {
	return &codedError{code: code, msg: message}
}

// Errorf returns an error with the given code and a formatted message. A %w
// verb in format is honoured: the result unwraps to the wrapped error.
func Errorf(code ErrorCode, format string, args ...any) error {
	formatted := fmt.Errorf(format, args...)
	return &codedError{code: code, msg: formatted.Error(), cause: errors.Unwrap(formatted)}
}

// Wrap adds message as context to err. The code of err is kept. Wrap returns
// nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &codedError{code: Code(err), msg: message, cause: err, chained: true}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &codedError{code: Code(err), msg: fmt.Sprintf(format, args...), cause: err, chained: true}
}

// WithCode re-classifies err under code, keeping its message and chain.
func WithCode(err error, code ErrorCode) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, cause: err, chained: true}
}

// Code returns the code of err. For joined errors the code of the first
// leaf carrying a code is returned.
func Code(err error) ErrorCode {
	if err == nil {
		return OK
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*codedError); ok {
			return ce.code
		}
		for _, inner := range uerr.Unwrap(e) {
			if c := Code(inner); c != Unknown {
				return c
			}
		}
	}
	return Unknown
}
