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
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"unicore.io/unicore/go/uerrors"
)

// HTTP fetches data files relative to a base URL, such as
// https://www.unicode.org/Public/15.0.0/ucd.
type HTTP struct {
	base    string
	client  *http.Client
	limiter *rate.Limiter
}

var _ Source = (*HTTP)(nil)

// NewHTTP returns a source for base. A nil client means
// http.DefaultClient. Requests are not paced until WithRateLimit is called.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{
		base:    strings.TrimRight(base, "/"),
		client:  client,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

// WithRateLimit limits the source to perSecond requests per second with the
// given burst.
func (h *HTTP) WithRateLimit(perSecond float64, burst int) *HTTP {
	h.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	return h
}

func (h *HTTP) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := h.base + "/" + strings.TrimLeft(name, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, uerrors.Wrapf(uerrors.WithCode(err, uerrors.InvalidArgument), "building request for %s", u)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, uerrors.Wrapf(err, "GET %s", u)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, notFound(h.Describe(), name, errors.New(resp.Status))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		resp.Body.Close()
		return nil, uerrors.Errorf(uerrors.Unknown, "GET %s: %s", u, resp.Status)
	}
	return resp.Body, nil
}

func (h *HTTP) Describe() string {
	return h.base
}
