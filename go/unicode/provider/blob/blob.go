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

// Package blob reads and writes compiled snapshots of every table a
// provider serves, so that a deployment can load its Unicode data from a
// single file instead of parsing the UCD.
//
// A snapshot file is laid out as:
//
//	magic          "UCB1"
//	format         uint16, big endian
//	codec          uint8
//	version        uint8 length, then the Unicode version string
//	checksum       uint64, xxhash64 of the uncompressed payload
//	size           uint64, length of the uncompressed payload
//	payload        compressed with codec
//
// Any problem reading a snapshot is reported as a DataError.
package blob

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-version"
	"golang.org/x/sync/errgroup"

	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/provider/source"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// Name is the provider name reported in logs and metrics.
const Name = "blob"

// DefaultName is the file name Open uses when none is given.
const DefaultName = "unicore.blob"

const (
	magic         = "UCB1"
	formatVersion = 2

	// maxPayload bounds the decompressed size of a snapshot.
	maxPayload = 64 << 20
)

// Tables is a snapshot of every table a provider serves.
type Tables struct {
	Normalization *provider.NormalizationData
	Enumerated    map[uprops.EnumeratedProperty]*umap.Map[uint32]
	Binary        map[uprops.BinaryProperty]*uset.Set
	// ScriptExtensions is nil when the source provider has no such table.
	ScriptExtensions *provider.ScriptExtensionsData
}

// Snapshot loads every table from p concurrently. Tables p reports as
// absent with provider.ErrNoTable are left out of the snapshot.
func Snapshot(ctx context.Context, p provider.Provider) (*Tables, error) {
	t := &Tables{
		Enumerated: make(map[uprops.EnumeratedProperty]*umap.Map[uint32]),
		Binary:     make(map[uprops.BinaryProperty]*uset.Set),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	g.Go(func() error {
		n, err := p.Normalization(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		t.Normalization = n
		return nil
	})
	for _, prop := range uprops.EnumeratedProperties() {
		g.Go(func() error {
			m, err := p.EnumeratedProperty(ctx, prop)
			if err != nil {
				return uerrors.Wrapf(err, "snapshot %v", prop)
			}
			mu.Lock()
			defer mu.Unlock()
			t.Enumerated[prop] = m
			return nil
		})
	}
	for _, prop := range uprops.BinaryProperties() {
		g.Go(func() error {
			s, err := p.BinaryProperty(ctx, prop)
			if errors.Is(err, provider.ErrNoTable) {
				if log.V(1) {
					log.InfoS("snapshot skips absent table", "provider", p.Name(), "property", prop)
				}
				return nil
			}
			if err != nil {
				return uerrors.Wrapf(err, "snapshot %v", prop)
			}
			mu.Lock()
			defer mu.Unlock()
			t.Binary[prop] = s
			return nil
		})
	}
	g.Go(func() error {
		d, err := p.ScriptExtensions(ctx)
		if errors.Is(err, provider.ErrNoTable) {
			return nil
		}
		if err != nil {
			return uerrors.Wrap(err, "snapshot Script_Extensions")
		}
		mu.Lock()
		defer mu.Unlock()
		t.ScriptExtensions = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

type options struct {
	codec      Codec
	minVersion *version.Version
}

// Option configures Write and Open.
type Option func(*options) error

// WithCodec selects the payload compression for Write. The default is zstd.
func WithCodec(c Codec) Option {
	return func(o *options) error {
		if _, ok := codecNames[c]; !ok {
			return uerrors.Errorf(uerrors.InvalidArgument, "unknown codec %v", c)
		}
		o.codec = c
		return nil
	}
}

// WithMinUnicodeVersion makes Read and Open reject snapshots of an older
// Unicode version.
func WithMinUnicodeVersion(v string) Option {
	return func(o *options) error {
		minVersion, err := version.NewVersion(v)
		if err != nil {
			return uerrors.Errorf(uerrors.InvalidArgument, "invalid minimum Unicode version %q: %v", v, err)
		}
		o.minVersion = minVersion
		return nil
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{codec: CodecZstd}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Write encodes t to w.
func Write(w io.Writer, t *Tables, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	if t == nil || t.Normalization == nil {
		return uerrors.New(uerrors.InvalidArgument, "blob: snapshot has no normalization data")
	}
	if err := t.Normalization.Validate(); err != nil {
		return err
	}
	if t.ScriptExtensions != nil {
		if err := t.ScriptExtensions.Validate(); err != nil {
			return err
		}
	}
	v := t.Normalization.UnicodeVersion
	if len(v) > 255 {
		return uerrors.Errorf(uerrors.InvalidArgument, "blob: Unicode version %q too long", v)
	}

	payload := encodeTables(t)

	header := make([]byte, 0, len(magic)+2+1+1+len(v)+8+8)
	header = append(header, magic...)
	header = binary.BigEndian.AppendUint16(header, formatVersion)
	header = append(header, byte(o.codec), byte(len(v)))
	header = append(header, v...)
	header = binary.BigEndian.AppendUint64(header, xxhash.Sum64(payload))
	header = binary.BigEndian.AppendUint64(header, uint64(len(payload)))
	if _, err := w.Write(header); err != nil {
		return err
	}

	cw, err := o.codec.newWriter(w)
	if err != nil {
		return err
	}
	if _, err := cw.Write(payload); err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}

func dataErrorf(format string, args ...any) error {
	return uerrors.Errorf(uerrors.DataError, "blob: "+format, args...)
}

// Read decodes a snapshot from r.
func Read(r io.Reader, opts ...Option) (*Tables, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	fixed := make([]byte, len(magic)+2+1+1)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, dataErrorf("reading header: %v", err)
	}
	if string(fixed[:len(magic)]) != magic {
		return nil, dataErrorf("bad magic %q", fixed[:len(magic)])
	}
	if f := binary.BigEndian.Uint16(fixed[4:]); f != formatVersion {
		return nil, dataErrorf("unsupported format version %d", f)
	}
	codec := Codec(fixed[6])
	if _, ok := codecNames[codec]; !ok {
		return nil, dataErrorf("unknown codec %d", uint8(codec))
	}

	rest := make([]byte, int(fixed[7])+8+8)
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, dataErrorf("reading header: %v", err)
	}
	unicodeVersion := string(rest[:fixed[7]])
	checksum := binary.BigEndian.Uint64(rest[fixed[7]:])
	size := binary.BigEndian.Uint64(rest[int(fixed[7])+8:])
	if size > maxPayload {
		return nil, dataErrorf("payload size %d exceeds %d", size, maxPayload)
	}
	if err := checkVersion(unicodeVersion, o.minVersion); err != nil {
		return nil, err
	}

	cr, err := codec.newReader(r)
	if err != nil {
		return nil, dataErrorf("%v: %v", codec, err)
	}
	defer cr.Close()

	var buf bytes.Buffer
	buf.Grow(int(size))
	if _, err := io.Copy(&buf, io.LimitReader(cr, int64(size)+1)); err != nil {
		return nil, dataErrorf("decompressing %v payload: %v", codec, err)
	}
	if uint64(buf.Len()) != size {
		return nil, dataErrorf("payload is %d bytes, header says %d", buf.Len(), size)
	}
	payload := buf.Bytes()
	if sum := xxhash.Sum64(payload); sum != checksum {
		return nil, dataErrorf("checksum mismatch: got %016x, want %016x", sum, checksum)
	}
	return decodeTables(payload, unicodeVersion)
}

func checkVersion(v string, minVersion *version.Version) error {
	if minVersion == nil {
		return nil
	}
	got, err := version.NewVersion(v)
	if err != nil {
		return dataErrorf("unparseable Unicode version %q", v)
	}
	if got.LessThan(minVersion) {
		return dataErrorf("Unicode version %s is older than the required %s", got, minVersion)
	}
	return nil
}

// Open reads the snapshot name from src and returns a provider serving its
// tables. An empty name means DefaultName.
func Open(ctx context.Context, src source.Source, name string, opts ...Option) (*Provider, error) {
	if name == "" {
		name = DefaultName
	}
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, uerrors.Wrapf(uerrors.WithCode(err, uerrors.DataError), "blob: opening %s", name)
	}
	defer rc.Close()

	t, err := Read(rc, opts...)
	if err != nil {
		return nil, uerrors.Wrapf(err, "%s/%s", src.Describe(), name)
	}
	log.InfoS("loaded unicode snapshot", "source", src.Describe(), "name", name,
		"unicode_version", t.Normalization.UnicodeVersion)
	return New(t), nil
}

// Provider serves the tables of a snapshot.
type Provider struct {
	tables *Tables
}

var _ provider.Provider = (*Provider)(nil)

// New returns a provider serving t.
func New(t *Tables) *Provider {
	return &Provider{tables: t}
}

func (p *Provider) Name() string { return Name }

func (p *Provider) Normalization(ctx context.Context) (*provider.NormalizationData, error) {
	return p.tables.Normalization, nil
}

func (p *Provider) EnumeratedProperty(ctx context.Context, prop uprops.EnumeratedProperty) (*umap.Map[uint32], error) {
	if m, ok := p.tables.Enumerated[prop]; ok {
		return m, nil
	}
	return nil, provider.NoTable(Name, prop.String())
}

func (p *Provider) BinaryProperty(ctx context.Context, prop uprops.BinaryProperty) (*uset.Set, error) {
	if s, ok := p.tables.Binary[prop]; ok {
		return s, nil
	}
	return nil, provider.NoTable(Name, prop.String())
}

func (p *Provider) ScriptExtensions(ctx context.Context) (*provider.ScriptExtensionsData, error) {
	if p.tables.ScriptExtensions == nil {
		return nil, provider.NoTable(Name, "Script_Extensions")
	}
	return p.tables.ScriptExtensions, nil
}
