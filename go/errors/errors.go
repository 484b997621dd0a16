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

// Package errors contains helpers for walking errors produced by
// errors.Join and other multi-error wrappers.
package errors

// Unwrap returns the errors directly wrapped by err, if err implements
// Unwrap() []error. Otherwise it returns nil.
func Unwrap(err error) []error {
	if err == nil {
		return nil
	}
	u, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	errs := u.Unwrap()
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UnwrapAll flattens a tree of joined errors into its leaves, in order.
// A non-joined error is returned as a single-element slice.
func UnwrapAll(err error) []error {
	if err == nil {
		return nil
	}
	errs := Unwrap(err)
	if errs == nil {
		if _, joined := err.(interface{ Unwrap() []error }); joined {
			return nil
		}
		return []error{err}
	}
	var leaves []error
	for _, e := range errs {
		leaves = append(leaves, UnwrapAll(e)...)
	}
	return leaves
}

// UnwrapFirst returns the first leaf of err, or nil.
func UnwrapFirst(err error) error {
	leaves := UnwrapAll(err)
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}
