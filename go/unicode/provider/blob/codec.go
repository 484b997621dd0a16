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

package blob

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4"

	"unicore.io/unicore/go/uerrors"
)

// Codec is the compression applied to the snapshot payload. Its value is
// stored in the header.
type Codec uint8

const (
	CodecZstd Codec = iota + 1
	CodecS2
	CodecGzip
	CodecLZ4
	CodecSnappy
)

var codecNames = map[Codec]string{
	CodecZstd:   "zstd",
	CodecS2:     "s2",
	CodecGzip:   "gzip",
	CodecLZ4:    "lz4",
	CodecSnappy: "snappy",
}

// Codecs lists the supported codecs.
func Codecs() []Codec {
	return []Codec{CodecZstd, CodecS2, CodecGzip, CodecLZ4, CodecSnappy}
}

func (c Codec) String() string {
	if n, ok := codecNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Codec(%d)", uint8(c))
}

// ParseCodec accepts a codec name such as "zstd".
func ParseCodec(name string) (Codec, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range codecNames {
		if n == name {
			return c, nil
		}
	}
	return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown codec %q", name)
}

func (c Codec) newWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CodecZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	case CodecS2:
		return s2.NewWriter(w, s2.WriterBetterCompression()), nil
	case CodecGzip:
		return pgzip.NewWriterLevel(w, pgzip.BestCompression)
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	case CodecSnappy:
		return snappy.NewBufferedWriter(w), nil
	}
	return nil, uerrors.Errorf(uerrors.InvalidArgument, "unknown codec %v", c)
}

func (c Codec) newReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CodecZstd:
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case CodecS2:
		return io.NopCloser(s2.NewReader(r)), nil
	case CodecGzip:
		return pgzip.NewReader(r)
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CodecSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	}
	return nil, uerrors.Errorf(uerrors.DataError, "unknown codec %v", c)
}
