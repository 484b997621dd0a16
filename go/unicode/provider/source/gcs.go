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

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"unicore.io/unicore/go/uerrors"
)

// GCSBucket is the part of a GCS bucket handle used by GCS.
type GCSBucket interface {
	NewReader(ctx context.Context, object string) (io.ReadCloser, error)
}

type bucketHandle struct {
	h *storage.BucketHandle
}

func (b bucketHandle) NewReader(ctx context.Context, object string) (io.ReadCloser, error) {
	return b.h.Object(object).NewReader(ctx)
}

// GCS reads data files from objects under a prefix of a bucket.
type GCS struct {
	bucket GCSBucket
	name   string
	prefix string
}

var _ Source = (*GCS)(nil)

// NewGCS returns a source reading objects of bucket, whose name is used
// only for Describe.
func NewGCS(bucket GCSBucket, name, prefix string) *GCS {
	return &GCS{bucket: bucket, name: name, prefix: objectPrefix(prefix)}
}

// NewGCSFromEnv creates a storage client with application default
// credentials. Extra client options, such as an emulator endpoint, may be
// passed.
func NewGCSFromEnv(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*GCS, error) {
	if bucket == "" {
		return nil, uerrors.New(uerrors.InvalidArgument, "gs location has no bucket")
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, uerrors.Wrap(err, "creating GCS client")
	}
	return NewGCS(bucketHandle{h: client.Bucket(bucket)}, bucket, prefix), nil
}

func (g *GCS) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	object := objectKey(g.prefix, name)
	r, err := g.bucket.NewReader(ctx, object)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, notFound(g.Describe(), name, err)
		}
		return nil, uerrors.Wrapf(err, "gcs read %s/%s", g.name, object)
	}
	return r, nil
}

func (g *GCS) Describe() string {
	return "gs://" + objectKey(g.name, g.prefix)
}
