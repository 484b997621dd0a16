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

// Package provider defines where Unicode tables come from.
//
// A Provider hands out the raw tables that the normalization engine and the
// property loaders are built from. Implementations live in subpackages:
// compiled (bundled with the binary), ucd (Unicode Character Database text
// files) and blob (compiled snapshots). Tables are immutable once returned.
package provider

import (
	"context"
	"errors"
	"slices"
	"unicode/utf16"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// Provider supplies Unicode data tables.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Normalization returns the tables the normalization engine needs.
	Normalization(ctx context.Context) (*NormalizationData, error)
	// EnumeratedProperty returns the values of prop as raw integers. Their
	// meaning is given by the uprops type of the property.
	EnumeratedProperty(ctx context.Context, prop uprops.EnumeratedProperty) (*umap.Map[uint32], error)
	// BinaryProperty returns the code points that have prop.
	BinaryProperty(ctx context.Context, prop uprops.BinaryProperty) (*uset.Set, error)
	// ScriptExtensions returns the Script_Extensions property.
	ScriptExtensions(ctx context.Context) (*ScriptExtensionsData, error)
}

// ErrNoTable is matched by the DataError a provider returns for a table it
// does not carry at all, as opposed to one it failed to load.
var ErrNoTable = errors.New("table not available")

// NoTable returns the error for a table the named provider does not carry.
func NoTable(provider, table string) error {
	return uerrors.Errorf(uerrors.DataError, "%s: no %s table: %w", provider, table, ErrNoTable)
}

// ScriptExtensionsData is the Script_Extensions property as listed in
// ScriptExtensions.txt.
type ScriptExtensionsData struct {
	// Lists holds the distinct script lists, each sorted by value.
	Lists [][]uprops.Script
	// Index maps a code point to one plus the index of its list in Lists.
	// Code points mapped to 0 have the extensions {Script}.
	Index *umap.Map[uint32]
}

// Get returns the listed extensions of r, or nil if r has none beyond its
// Script value.
func (d *ScriptExtensionsData) Get(r rune) []uprops.Script {
	if i := d.Index.Get(r); i > 0 {
		return d.Lists[i-1]
	}
	return nil
}

// Validate checks the structure of d. Problems are reported as DataError.
func (d *ScriptExtensionsData) Validate() error {
	switch {
	case d == nil:
		return uerrors.New(uerrors.DataError, "script extensions data is nil")
	case d.Index == nil:
		return uerrors.New(uerrors.DataError, "script extensions index is missing")
	case d.Index.Default() != 0:
		return uerrors.New(uerrors.DataError, "script extensions index must default to 0")
	}
	for i, l := range d.Lists {
		if len(l) == 0 {
			return uerrors.Errorf(uerrors.DataError, "script extensions list %d is empty", i)
		}
		if !slices.IsSorted(l) || len(slices.Compact(slices.Clone(l))) != len(l) {
			return uerrors.Errorf(uerrors.DataError, "script extensions list %d is not sorted and distinct", i)
		}
	}
	for _, e := range d.Index.Entries() {
		if e.Value > uint32(len(d.Lists)) {
			return uerrors.Errorf(uerrors.DataError, "script extensions index %d at %v out of range", e.Value, e.Range)
		}
	}
	return nil
}

// NormalizationData is the input of the normalization engine.
//
// Decomposition mappings may be single-step (as listed in UnicodeData.txt)
// or already fully expanded; the engine applies them recursively either
// way. Composition pairs are taken from the two-element canonical mappings,
// so those must be single-step.
type NormalizationData struct {
	UnicodeVersion string

	CombiningClass *umap.Map[uint8]
	Canonical      map[rune][]rune
	// Compatibility holds the mappings that carry a <tag> in
	// UnicodeData.txt. Characters whose only mapping is canonical are not
	// repeated here.
	Compatibility map[rune][]rune
	// CompositionExclusions is Full_Composition_Exclusion.
	CompositionExclusions *uset.Set
}

// maxExpansionDepth bounds recursive decomposition. Real data needs four
// levels at most; anything deeper is a cycle.
const maxExpansionDepth = 16

// Validate checks the structure of d. Problems are reported as DataError.
func (d *NormalizationData) Validate() error {
	switch {
	case d == nil:
		return uerrors.New(uerrors.DataError, "normalization data is nil")
	case d.CombiningClass == nil:
		return uerrors.New(uerrors.DataError, "combining class table is missing")
	case d.Canonical == nil:
		return uerrors.New(uerrors.DataError, "canonical decomposition table is missing")
	case d.CompositionExclusions == nil:
		return uerrors.New(uerrors.DataError, "composition exclusion set is missing")
	}

	if err := validateMappings("canonical", d.Canonical); err != nil {
		return err
	}
	if err := validateMappings("compatibility", d.Compatibility); err != nil {
		return err
	}
	return d.checkDepth()
}

func validCodePoint(c rune) bool {
	return c >= uset.MinRune && c <= uset.MaxRune && !utf16.IsSurrogate(c)
}

func validateMappings(kind string, m map[rune][]rune) error {
	for c, to := range m {
		if !validCodePoint(c) {
			return uerrors.Errorf(uerrors.DataError, "%s decomposition of invalid code point 0x%X", kind, c)
		}
		if len(to) == 0 {
			return uerrors.Errorf(uerrors.DataError, "empty %s decomposition for U+%04X", kind, c)
		}
		for _, r := range to {
			if !validCodePoint(r) {
				return uerrors.Errorf(uerrors.DataError, "%s decomposition of U+%04X contains invalid code point 0x%X", kind, c, r)
			}
		}
	}
	return nil
}

// checkDepth rejects mapping chains that never bottom out.
func (d *NormalizationData) checkDepth() error {
	done := make(map[rune]bool, len(d.Canonical)+len(d.Compatibility))
	var visit func(c rune, level int) error
	visit = func(c rune, level int) error {
		if level > maxExpansionDepth {
			return uerrors.Errorf(uerrors.DataError, "decomposition of U+%04X does not terminate", c)
		}
		if done[c] {
			return nil
		}
		for _, to := range [][]rune{d.Canonical[c], d.Compatibility[c]} {
			for _, r := range to {
				if r == c {
					return uerrors.Errorf(uerrors.DataError, "U+%04X decomposes to itself", c)
				}
				if err := visit(r, level+1); err != nil {
					return err
				}
			}
		}
		done[c] = true
		return nil
	}

	for c := range d.Canonical {
		if err := visit(c, 0); err != nil {
			return err
		}
	}
	for c := range d.Compatibility {
		if err := visit(c, 0); err != nil {
			return err
		}
	}
	return nil
}
