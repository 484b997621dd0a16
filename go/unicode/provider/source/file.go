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

package source

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"unicore.io/unicore/go/uerrors"
)

// File reads data files from a directory of an afero filesystem.
type File struct {
	fs  afero.Fs
	dir string
}

var _ Source = (*File)(nil)

// NewFile returns a source rooted at dir on fsys.
func NewFile(fsys afero.Fs, dir string) *File {
	return &File{fs: fsys, dir: dir}
}

func (f *File) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := filepath.Join(f.dir, filepath.FromSlash(name))
	file, err := f.fs.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(f.Describe(), name, err)
		}
		return nil, uerrors.Wrapf(err, "opening %s", p)
	}
	return file, nil
}

func (f *File) Describe() string {
	return f.dir
}
