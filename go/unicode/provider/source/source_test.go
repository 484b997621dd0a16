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
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"unicore.io/unicore/go/uerrors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		goleak.IgnoreTopFunction("github.com/golang/glog.(*fileSink).flushDaemon"),
	)
}

func readAll(t *testing.T, src Source, name string) string {
	t.Helper()
	rc, err := src.Open(context.Background(), name)
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/ucd/UnicodeData.txt", []byte("0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/ucd/extracted/DerivedName.txt", []byte("# names\n"), 0o644))

	src := NewFile(fs, "/ucd")
	assert.Equal(t, "/ucd", src.Describe())
	assert.Contains(t, readAll(t, src, "UnicodeData.txt"), "LATIN CAPITAL LETTER A")
	assert.Equal(t, "# names\n", readAll(t, src, "extracted/DerivedName.txt"))

	_, err := src.Open(context.Background(), "Scripts.txt")
	assert.Equal(t, uerrors.NotFound, uerrors.Code(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Open(ctx, "UnicodeData.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Public/15.0.0/ucd/CompositionExclusions.txt":
			_, _ = io.WriteString(w, "0958 # DEVANAGARI LETTER QA\n")
		case "/Public/15.0.0/ucd/Broken.txt":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTP(srv.URL+"/Public/15.0.0/ucd/", srv.Client())
	assert.Equal(t, srv.URL+"/Public/15.0.0/ucd", src.Describe())
	assert.Equal(t, "0958 # DEVANAGARI LETTER QA\n", readAll(t, src, "CompositionExclusions.txt"))

	_, err := src.Open(context.Background(), "Missing.txt")
	assert.Equal(t, uerrors.NotFound, uerrors.Code(err))

	_, err = src.Open(context.Background(), "Broken.txt")
	require.Error(t, err)
	assert.Equal(t, uerrors.Unknown, uerrors.Code(err))
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	src := NewHTTP(srv.URL, srv.Client()).WithRateLimit(0.001, 1)
	assert.Equal(t, "ok", readAll(t, src, "a.txt"))

	// The single token is spent; the next request cannot be admitted before
	// the deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := src.Open(ctx, "b.txt")
	assert.Error(t, err)
}

type fakeS3 struct {
	objects map[string]string
	calls   []string
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.calls = append(f.calls, key)
	body, ok := f.objects[key]
	if !ok {
		return nil, &s3types.NoSuchKey{Message: aws.String("no such key")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{
		"unicode/ucd/15.0.0/Scripts.txt": "0041..005A ; Latin # L&  [26]\n",
	}}
	src := NewS3(fake, "unicode", "/ucd/15.0.0/")
	assert.Equal(t, "s3://unicode/ucd/15.0.0", src.Describe())
	assert.Contains(t, readAll(t, src, "Scripts.txt"), "Latin")

	_, err := src.Open(context.Background(), "PropList.txt")
	assert.Equal(t, uerrors.NotFound, uerrors.Code(err))
	assert.Equal(t, []string{"unicode/ucd/15.0.0/Scripts.txt", "unicode/ucd/15.0.0/PropList.txt"}, fake.calls)
}

func TestS3Client(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/unicode/blobs/unicore.blob":
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = io.WriteString(w, "UCB1")
		default:
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>
<Error>
	<Code>NoSuchKey</Code>
	<Message>The specified key does not exist.</Message>
</Error>`)
		}
	}))
	defer srv.Close()

	client := s3.NewFromConfig(aws.Config{
		Region:      "us-east-1",
		Credentials: aws.AnonymousCredentials{},
	}, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
		o.UsePathStyle = true
	})

	src := NewS3(client, "unicode", "blobs")
	assert.Equal(t, "UCB1", readAll(t, src, "unicore.blob"))

	_, err := src.Open(context.Background(), "missing.blob")
	assert.Equal(t, uerrors.NotFound, uerrors.Code(err))
}

type fakeBucket map[string]string

func (b fakeBucket) NewReader(_ context.Context, object string) (io.ReadCloser, error) {
	body, ok := b[object]
	if !ok {
		return nil, storage.ErrObjectNotExist
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func TestGCS(t *testing.T) {
	src := NewGCS(fakeBucket{"snapshots/unicore.blob": "UCB1"}, "unicode-data", "snapshots")
	assert.Equal(t, "gs://unicode-data/snapshots", src.Describe())
	assert.Equal(t, "UCB1", readAll(t, src, "unicore.blob"))

	_, err := src.Open(context.Background(), "other.blob")
	assert.Equal(t, uerrors.NotFound, uerrors.Code(err))
	assert.ErrorIs(t, err, storage.ErrObjectNotExist)
}

func TestParse(t *testing.T) {
	ctx := context.Background()

	src, err := Parse(ctx, "/usr/share/unicode")
	require.NoError(t, err)
	assert.IsType(t, &File{}, src)
	assert.Equal(t, "/usr/share/unicode", src.Describe())

	src, err = Parse(ctx, "file:///srv/ucd")
	require.NoError(t, err)
	assert.Equal(t, "/srv/ucd", src.Describe())

	src, err = Parse(ctx, "https://www.unicode.org/Public/15.0.0/ucd")
	require.NoError(t, err)
	assert.IsType(t, &HTTP{}, src)

	_, err = Parse(ctx, "ftp://example.com/ucd")
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)

	_, err = Parse(ctx, "")
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)

	_, err = Parse(ctx, "s3:///no-bucket")
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
}
