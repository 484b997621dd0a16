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

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	errRange := errors.New("range out of order")
	errDomain := errors.New("code point out of domain")
	errTable := errors.New("missing table")
	errVersion := errors.New("unicode version too old")

	tt := []struct {
		name       string
		err        error
		wantUnwrap []error
		wantAll    []error
		wantFirst  error
	}{
		{
			name: "nil",
		},
		{
			name:      "plain",
			err:       errRange,
			wantAll:   []error{errRange},
			wantFirst: errRange,
		},
		{
			name:       "joined single",
			err:        errors.Join(errRange),
			wantUnwrap: []error{errRange},
			wantAll:    []error{errRange},
			wantFirst:  errRange,
		},
		{
			name:       "joined flat",
			err:        errors.Join(errRange, errDomain, errTable, errVersion),
			wantUnwrap: []error{errRange, errDomain, errTable, errVersion},
			wantAll:    []error{errRange, errDomain, errTable, errVersion},
			wantFirst:  errRange,
		},
		{
			name:       "joined nested",
			err:        errors.Join(errors.Join(errRange, errDomain), errors.Join(errTable, errVersion)),
			wantUnwrap: []error{errors.Join(errRange, errDomain), errors.Join(errTable, errVersion)},
			wantAll:    []error{errRange, errDomain, errTable, errVersion},
			wantFirst:  errRange,
		},
		{
			name:       "fmt multi wrap",
			err:        fmt.Errorf("loading: %w, %w", errTable, errVersion),
			wantUnwrap: []error{errTable, errVersion},
			wantAll:    []error{errTable, errVersion},
			wantFirst:  errTable,
		},
		{
			name:      "fmt single wrap is a leaf",
			err:       fmt.Errorf("loading: %w", errTable),
			wantAll:   []error{fmt.Errorf("loading: %w", errTable)},
			wantFirst: fmt.Errorf("loading: %w", errTable),
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantUnwrap, Unwrap(tc.err))
			assert.Equal(t, tc.wantAll, UnwrapAll(tc.err))
			assert.Equal(t, tc.wantFirst, UnwrapFirst(tc.err))
		})
	}
}
