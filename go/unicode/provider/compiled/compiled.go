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

// Package compiled provides the Unicode data that ships with the binary.
//
// Normalization tables are derived from golang.org/x/text/unicode/norm and
// property tables from the standard library unicode package. Each table is
// computed on first use and then shared for the life of the process.
//
// Neither source carries Script_Extensions or the emoji properties; those
// tables report provider.ErrNoTable.
package compiled

import (
	"context"
	"sync"
	"unicode"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// Name is the provider name reported in logs and metrics.
const Name = "compiled"

type compiled struct{}

var _ provider.Provider = compiled{}

// Default returns the bundled data provider.
func Default() provider.Provider { return compiled{} }

func (compiled) Name() string { return Name }

var (
	normOnce sync.Once
	normData *provider.NormalizationData

	gcOnce sync.Once
	gcMap  *umap.Map[uint32]

	scriptOnce sync.Once
	scriptMap  *umap.Map[uint32]

	binaryMu   sync.Mutex
	binarySets = make(map[uprops.BinaryProperty]*uset.Set)
)

func (compiled) Normalization(ctx context.Context) (*provider.NormalizationData, error) {
	normOnce.Do(func() {
		normData = deriveNormalization()
	})
	return normData, nil
}

func (c compiled) EnumeratedProperty(ctx context.Context, prop uprops.EnumeratedProperty) (*umap.Map[uint32], error) {
	switch prop {
	case uprops.PropGeneralCategory:
		gcOnce.Do(func() { gcMap = deriveGeneralCategory() })
		return gcMap, nil
	case uprops.PropScript:
		scriptOnce.Do(func() { scriptMap = deriveScript() })
		return scriptMap, nil
	case uprops.PropCanonicalCombiningClass:
		d, err := c.Normalization(ctx)
		if err != nil {
			return nil, err
		}
		return umap.Convert(d.CombiningClass, func(v uint8) (uint32, error) { return uint32(v), nil })
	}
	return nil, uerrors.Errorf(uerrors.InvalidArgument, "compiled data has no table for %v", prop)
}

func (c compiled) BinaryProperty(ctx context.Context, prop uprops.BinaryProperty) (*uset.Set, error) {
	binaryMu.Lock()
	s, ok := binarySets[prop]
	binaryMu.Unlock()
	if ok {
		return s, nil
	}

	if prop.IsEmoji() {
		return nil, provider.NoTable(Name, prop.String())
	}

	switch prop {
	case uprops.FullCompositionExclusion:
		d, err := c.Normalization(ctx)
		if err != nil {
			return nil, err
		}
		s = d.CompositionExclusions
	case uprops.Alphabetic:
		s = fromTables(unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_Alphabetic)
	case uprops.Lowercase:
		s = fromTables(unicode.Ll, unicode.Other_Lowercase)
	case uprops.Uppercase:
		s = fromTables(unicode.Lu, unicode.Other_Uppercase)
	default:
		rt, ok := unicode.Properties[prop.String()]
		if !ok {
			return nil, uerrors.Errorf(uerrors.InvalidArgument, "compiled data has no table for %v", prop)
		}
		s = fromTables(rt)
	}

	binaryMu.Lock()
	binarySets[prop] = s
	binaryMu.Unlock()
	return s, nil
}

func (compiled) ScriptExtensions(ctx context.Context) (*provider.ScriptExtensionsData, error) {
	return nil, provider.NoTable(Name, "Script_Extensions")
}

func fromTables(tables ...*unicode.RangeTable) *uset.Set {
	return uset.FromRangeTable(tables...)
}
