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

// Package properties loads typed Unicode property maps and sets from a
// provider.
//
// The Load functions convert the raw integers a provider serves into the
// enumerations of package uprops; a value with no enumeration constant is a
// DataError. The functions without a provider argument use the bundled data
// and cannot fail.
package properties

import (
	"context"
	"sync"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/provider/compiled"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// LoadGeneralCategory returns the General_Category map of p. The result
// answers group queries such as "all letters".
func LoadGeneralCategory(ctx context.Context, p provider.Provider) (*umap.MaskMap[uprops.GeneralCategory], error) {
	m, err := loadEnumerated(ctx, p, uprops.PropGeneralCategory, uprops.GeneralCategoryFromValue)
	if err != nil {
		return nil, err
	}
	mm, err := umap.NewMaskMap(m)
	if err != nil {
		return nil, uerrors.WithCode(err, uerrors.DataError)
	}
	return mm, nil
}

// LoadScript returns the Script map of p.
func LoadScript(ctx context.Context, p provider.Provider) (*umap.Map[uprops.Script], error) {
	return loadEnumerated(ctx, p, uprops.PropScript, uprops.ScriptFromValue)
}

// LoadCanonicalCombiningClass returns the Canonical_Combining_Class map of
// p.
func LoadCanonicalCombiningClass(ctx context.Context, p provider.Provider) (*umap.Map[uprops.CanonicalCombiningClass], error) {
	return loadEnumerated(ctx, p, uprops.PropCanonicalCombiningClass, uprops.CanonicalCombiningClassFromValue)
}

// LoadBinary returns the set of code points of p that have prop.
func LoadBinary(ctx context.Context, p provider.Provider, prop uprops.BinaryProperty) (*uset.Set, error) {
	s, err := p.BinaryProperty(ctx, prop)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, uerrors.Errorf(uerrors.DataError, "%s: no table for %v", p.Name(), prop)
	}
	return s, nil
}

// SetForGeneralCategoryGroup returns the code points of p whose general
// category is in group.
func SetForGeneralCategoryGroup(ctx context.Context, p provider.Provider, group uprops.GeneralCategoryGroup) (*uset.Set, error) {
	m, err := LoadGeneralCategory(ctx, p)
	if err != nil {
		return nil, err
	}
	return m.SetForGroup(uint32(group)), nil
}

func loadEnumerated[V umap.Value](ctx context.Context, p provider.Provider, prop uprops.EnumeratedProperty,
	conv func(uint32) (V, error)) (*umap.Map[V], error) {
	raw, err := p.EnumeratedProperty(ctx, prop)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, uerrors.Errorf(uerrors.DataError, "%s: no table for %v", p.Name(), prop)
	}
	m, err := umap.Convert(raw, conv)
	if err != nil {
		return nil, uerrors.Wrapf(uerrors.WithCode(err, uerrors.DataError), "%s: %v", p.Name(), prop)
	}
	return m, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var (
	bundledGeneralCategory = sync.OnceValue(func() *umap.MaskMap[uprops.GeneralCategory] {
		return must(LoadGeneralCategory(context.Background(), compiled.Default()))
	})
	bundledScript = sync.OnceValue(func() *umap.Map[uprops.Script] {
		return must(LoadScript(context.Background(), compiled.Default()))
	})
	bundledCombiningClass = sync.OnceValue(func() *umap.Map[uprops.CanonicalCombiningClass] {
		return must(LoadCanonicalCombiningClass(context.Background(), compiled.Default()))
	})
)

// GeneralCategory returns the bundled General_Category map.
func GeneralCategory() *umap.MaskMap[uprops.GeneralCategory] { return bundledGeneralCategory() }

// Script returns the bundled Script map.
func Script() *umap.Map[uprops.Script] { return bundledScript() }

// CanonicalCombiningClass returns the bundled Canonical_Combining_Class
// map.
func CanonicalCombiningClass() *umap.Map[uprops.CanonicalCombiningClass] {
	return bundledCombiningClass()
}

// Binary returns the bundled set for prop. It panics if the bundled data
// has no table for prop, as for the emoji properties.
func Binary(prop uprops.BinaryProperty) *uset.Set {
	return must(LoadBinary(context.Background(), compiled.Default(), prop))
}
