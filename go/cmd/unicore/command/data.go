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

package command

import (
	"context"
	"strings"
	"sync"

	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/norm"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/provider/blob"
	"unicore.io/unicore/go/unicode/provider/compiled"
	"unicore.io/unicore/go/unicode/provider/source"
	"unicore.io/unicore/go/unicode/provider/ucd"
)

var (
	providerOnce sync.Once
	providerVal  provider.Provider
	providerErr  error

	tablesOnce sync.Once
	tablesVal  *norm.Tables
	tablesErr  error
)

// dataProvider returns the provider selected by the data.* settings. It is
// created once per process.
func dataProvider(ctx context.Context) (provider.Provider, error) {
	providerOnce.Do(func() {
		providerVal, providerErr = openProvider(ctx)
	})
	return providerVal, providerErr
}

func openProvider(ctx context.Context) (provider.Provider, error) {
	kind := strings.ToLower(strings.TrimSpace(dataSource.Get()))
	if kind == compiled.Name {
		return provider.Cached(compiled.Default()), nil
	}
	if kind != ucd.Name && kind != blob.Name {
		return nil, uerrors.Errorf(uerrors.InvalidArgument, "unknown data source %q: expected compiled, ucd or blob", kind)
	}

	src, err := source.Parse(ctx, dataLocation.Get())
	if err != nil {
		return nil, uerrors.Wrapf(err, "data source %s", kind)
	}
	log.InfoS("using Unicode data", "source", kind, "location", src.Describe())

	if kind == ucd.Name {
		return provider.Cached(ucd.New(src)), nil
	}
	var opts []blob.Option
	if v := minUnicodeVersion.Get(); v != "" {
		opts = append(opts, blob.WithMinUnicodeVersion(v))
	}
	p, err := blob.Open(ctx, src, blobName.Get(), opts...)
	if err != nil {
		return nil, err
	}
	return provider.Cached(p), nil
}

// normTables returns the normalization tables built from the selected
// data, shared by every form.
func normTables(ctx context.Context) (*norm.Tables, error) {
	tablesOnce.Do(func() {
		p, err := dataProvider(ctx)
		if err != nil {
			tablesErr = err
			return
		}
		d, err := p.Normalization(ctx)
		if err != nil {
			tablesErr = err
			return
		}
		tablesVal, tablesErr = norm.NewTables(d)
	})
	return tablesVal, tablesErr
}

// normalizer returns the normalizer for the form called name.
func normalizer(ctx context.Context, name string) (*norm.Normalizer, error) {
	form, err := norm.ParseForm(name)
	if err != nil {
		return nil, err
	}
	t, err := normTables(ctx)
	if err != nil {
		return nil, err
	}
	return norm.NewWithTables(t, form), nil
}
