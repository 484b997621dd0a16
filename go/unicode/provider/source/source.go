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

// Package source abstracts where raw Unicode data files are read from:
// a local directory, an HTTP server, an S3 bucket or a GCS bucket.
package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/spf13/afero"

	"unicore.io/unicore/go/uerrors"
)

// Source opens named data files.
type Source interface {
	// Open returns the contents of name. A missing file is reported with
	// the NotFound code.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Describe returns a human readable location, e.g. "s3://bucket/ucd".
	Describe() string
}

// Parse returns the source for location:
//
//	/path/to/dir, file:///path/to/dir   local directory
//	http://host/path, https://...       HTTP base URL
//	s3://bucket/prefix                  S3 bucket and key prefix
//	gs://bucket/prefix                  GCS bucket and object prefix
//
// Cloud clients are created with the ambient credentials of the process.
func Parse(ctx context.Context, location string) (Source, error) {
	if location == "" {
		return nil, uerrors.New(uerrors.InvalidArgument, "empty data location")
	}
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain paths, including Windows drive letters.
		return NewFile(afero.NewOsFs(), location), nil
	}

	switch u.Scheme {
	case "file":
		return NewFile(afero.NewOsFs(), u.Path), nil
	case "http", "https":
		return NewHTTP(location, http.DefaultClient), nil
	case "s3":
		return NewS3FromConfig(ctx, u.Host, objectPrefix(u.Path))
	case "gs":
		return NewGCSFromEnv(ctx, u.Host, objectPrefix(u.Path))
	}
	return nil, uerrors.Errorf(uerrors.InvalidArgument, "unsupported data location scheme %q", u.Scheme)
}

func objectPrefix(p string) string {
	return strings.Trim(p, "/")
}

// objectKey joins a bucket prefix and a file name.
func objectKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func notFound(what, name string, err error) error {
	return uerrors.Wrapf(uerrors.WithCode(err, uerrors.NotFound), "%s: %s not found", what, name)
}
