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

package properties

import (
	"context"
	"slices"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// ScriptExtensions answers Script_Extensions queries. A code point without
// a listed value has the extensions {Script}.
type ScriptExtensions struct {
	script *umap.Map[uprops.Script]
	data   *provider.ScriptExtensionsData
}

// LoadScriptExtensions combines the Script and Script_Extensions tables of
// p. Providers without a Script_Extensions table report an error wrapping
// provider.ErrNoTable.
func LoadScriptExtensions(ctx context.Context, p provider.Provider) (*ScriptExtensions, error) {
	script, err := LoadScript(ctx, p)
	if err != nil {
		return nil, err
	}
	data, err := p.ScriptExtensions(ctx)
	if err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, uerrors.Wrapf(err, "%s: Script_Extensions", p.Name())
	}
	return &ScriptExtensions{script: script, data: data}, nil
}

// Get returns the scripts of r sorted by value. The result must not be
// modified.
func (x *ScriptExtensions) Get(r rune) []uprops.Script {
	if l := x.data.Get(r); l != nil {
		return l
	}
	return []uprops.Script{x.script.Get(r)}
}

// Has reports whether sc is one of the scripts of r.
func (x *ScriptExtensions) Has(r rune, sc uprops.Script) bool {
	_, found := slices.BinarySearch(x.Get(r), sc)
	return found
}

// SetFor returns the code points whose extensions include sc.
func (x *ScriptExtensions) SetFor(sc uprops.Script) *uset.Set {
	b := uset.NewBuilder()
	b.AddSet(x.script.SetForValue(sc))
	b.RetainSet(x.data.Index.SetForValue(0))
	for i, l := range x.data.Lists {
		if _, found := slices.BinarySearch(l, sc); found {
			b.AddSet(x.data.Index.SetForValue(uint32(i + 1)))
		}
	}
	return b.Build()
}
