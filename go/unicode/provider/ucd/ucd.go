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

// Package ucd is a provider that reads the text files of the Unicode
// Character Database (https://www.unicode.org/Public/UCD/latest/ucd/).
//
// The files used are UnicodeData.txt, CompositionExclusions.txt,
// Scripts.txt, ScriptExtensions.txt, PropList.txt,
// DerivedCoreProperties.txt and emoji/emoji-data.txt. Each is read the
// first time a table needs it.
package ucd

import (
	"context"
	"io"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/provider/source"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// Name is the provider name reported in logs and metrics.
const Name = "ucd"

// Option configures a Provider.
type Option func(*Provider)

// WithUnicodeVersion sets the reported Unicode version. Without it the
// version is read from the header of CompositionExclusions.txt.
func WithUnicodeVersion(version string) Option {
	return func(p *Provider) { p.version = version }
}

// Provider reads UCD files from a source.
type Provider struct {
	src     source.Source
	version string

	unicodeData lazy[*unicodeData]
	exclusions  lazy[exclusionList]
	scripts     lazy[*umap.Map[uint32]]
	binaries    lazy[map[uprops.BinaryProperty]*uset.Set]
	emoji       lazy[map[uprops.BinaryProperty]*uset.Set]
	scx         lazy[*provider.ScriptExtensionsData]
	norm        lazy[*provider.NormalizationData]
}

var _ provider.Provider = (*Provider)(nil)

type exclusionList struct {
	set     *uset.Set
	version string
}

// New returns a provider reading from src.
func New(src source.Source, opts ...Option) *Provider {
	p := &Provider{src: src}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string { return Name }

// Preload reads and parses every file concurrently.
func (p *Provider) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { _, err := p.Normalization(ctx); return err })
	g.Go(func() error { _, err := p.loadScripts(ctx); return err })
	g.Go(func() error { _, err := p.loadBinaries(ctx); return err })
	g.Go(func() error { _, err := p.loadEmoji(ctx); return err })
	g.Go(func() error { _, err := p.ScriptExtensions(ctx); return err })
	return g.Wait()
}

func (p *Provider) Normalization(ctx context.Context) (*provider.NormalizationData, error) {
	return p.norm.get(ctx, func(ctx context.Context) (*provider.NormalizationData, error) {
		var (
			ud   *unicodeData
			excl exclusionList
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { ud, err = p.loadUnicodeData(gctx); return err })
		g.Go(func() (err error) { excl, err = p.loadExclusions(gctx); return err })
		if err := g.Wait(); err != nil {
			return nil, err
		}

		version := p.version
		if version == "" {
			version = excl.version
		}
		d := &provider.NormalizationData{
			UnicodeVersion:        version,
			CombiningClass:        ud.combiningClass,
			Canonical:             ud.canonical,
			Compatibility:         ud.compatibility,
			CompositionExclusions: fullCompositionExclusion(ud, excl.set),
		}
		if err := d.Validate(); err != nil {
			return nil, uerrors.Wrapf(err, "%s", p.src.Describe())
		}
		return d, nil
	})
}

// fullCompositionExclusion adds singletons and non-starter decompositions
// to the explicit exclusions.
func fullCompositionExclusion(ud *unicodeData, explicit *uset.Set) *uset.Set {
	b := uset.NewBuilder()
	b.AddSet(explicit)
	for c, d := range ud.canonical {
		if len(d) == 1 || ud.combiningClass.Get(d[0]) != 0 {
			_ = b.AddRune(c)
		}
	}
	return b.Build()
}

func (p *Provider) EnumeratedProperty(ctx context.Context, prop uprops.EnumeratedProperty) (*umap.Map[uint32], error) {
	switch prop {
	case uprops.PropGeneralCategory:
		ud, err := p.loadUnicodeData(ctx)
		if err != nil {
			return nil, err
		}
		return ud.generalCategory, nil
	case uprops.PropCanonicalCombiningClass:
		ud, err := p.loadUnicodeData(ctx)
		if err != nil {
			return nil, err
		}
		return umap.Convert(ud.combiningClass, func(v uint8) (uint32, error) { return uint32(v), nil })
	case uprops.PropScript:
		return p.loadScripts(ctx)
	}
	return nil, uerrors.Errorf(uerrors.InvalidArgument, "ucd provider has no table for %v", prop)
}

func (p *Provider) BinaryProperty(ctx context.Context, prop uprops.BinaryProperty) (*uset.Set, error) {
	if prop == uprops.FullCompositionExclusion {
		d, err := p.Normalization(ctx)
		if err != nil {
			return nil, err
		}
		return d.CompositionExclusions, nil
	}
	if !slices.Contains(uprops.BinaryProperties(), prop) {
		return nil, uerrors.Errorf(uerrors.InvalidArgument, "ucd provider has no table for %v", prop)
	}
	load := p.loadBinaries
	if prop.IsEmoji() {
		load = p.loadEmoji
	}
	sets, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if s, ok := sets[prop]; ok {
		return s, nil
	}
	return uset.Empty(), nil
}

func (p *Provider) ScriptExtensions(ctx context.Context) (*provider.ScriptExtensionsData, error) {
	return p.scx.get(ctx, func(ctx context.Context) (*provider.ScriptExtensionsData, error) {
		var d *provider.ScriptExtensionsData
		err := p.read(ctx, FileScriptExtensions, func(r io.Reader) (err error) {
			d, err = parseScriptExtensions(r)
			return err
		})
		return d, err
	})
}

func (p *Provider) loadUnicodeData(ctx context.Context) (*unicodeData, error) {
	return p.unicodeData.get(ctx, func(ctx context.Context) (*unicodeData, error) {
		var ud *unicodeData
		err := p.read(ctx, FileUnicodeData, func(r io.Reader) (err error) {
			ud, err = parseUnicodeData(r)
			return err
		})
		return ud, err
	})
}

func (p *Provider) loadExclusions(ctx context.Context) (exclusionList, error) {
	return p.exclusions.get(ctx, func(ctx context.Context) (exclusionList, error) {
		var l exclusionList
		err := p.read(ctx, FileCompositionExclusions, func(r io.Reader) (err error) {
			l.set, l.version, err = parseCodePointList(FileCompositionExclusions, r)
			return err
		})
		return l, err
	})
}

func (p *Provider) loadScripts(ctx context.Context) (*umap.Map[uint32], error) {
	return p.scripts.get(ctx, func(ctx context.Context) (*umap.Map[uint32], error) {
		var m *umap.Map[uint32]
		err := p.read(ctx, FileScripts, func(r io.Reader) (err error) {
			m, err = parseScripts(r)
			return err
		})
		return m, err
	})
}

func (p *Provider) loadBinaries(ctx context.Context) (map[uprops.BinaryProperty]*uset.Set, error) {
	return p.binaries.get(ctx, func(ctx context.Context) (map[uprops.BinaryProperty]*uset.Set, error) {
		return p.readBinaries(ctx, FilePropList, FileDerivedCoreProperties)
	})
}

func (p *Provider) loadEmoji(ctx context.Context) (map[uprops.BinaryProperty]*uset.Set, error) {
	return p.emoji.get(ctx, func(ctx context.Context) (map[uprops.BinaryProperty]*uset.Set, error) {
		return p.readBinaries(ctx, FileEmojiData)
	})
}

func (p *Provider) readBinaries(ctx context.Context, files ...string) (map[uprops.BinaryProperty]*uset.Set, error) {
	builders := make(map[uprops.BinaryProperty]*uset.Builder)
	for _, file := range files {
		err := p.read(ctx, file, func(r io.Reader) error {
			return parseBinaryProperties(file, r, builders)
		})
		if err != nil {
			return nil, err
		}
	}
	sets := make(map[uprops.BinaryProperty]*uset.Set, len(builders))
	for prop, b := range builders {
		sets[prop] = b.Build()
	}
	return sets, nil
}

func (p *Provider) read(ctx context.Context, name string, parse func(io.Reader) error) error {
	return readFile(ctx, p.src, name, parse)
}

// readFile opens name and hands it to parse. A missing file is a DataError.
func readFile(ctx context.Context, src source.Source, name string, parse func(io.Reader) error) error {
	rc, err := src.Open(ctx, name)
	if err != nil {
		if uerrors.Code(err) == uerrors.NotFound {
			err = uerrors.WithCode(err, uerrors.DataError)
		}
		return uerrors.Wrapf(err, "ucd: required file %s", name)
	}
	defer rc.Close()
	return parse(rc)
}

// lazy holds a value that is loaded on first successful use.
type lazy[T any] struct {
	mu   sync.Mutex
	val  T
	done bool
}

func (l *lazy[T]) get(ctx context.Context, load func(context.Context) (T, error)) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done {
		return l.val, nil
	}
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	l.val, l.done = v, true
	return v, nil
}
