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

package provider

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// Table names used as cache keys and metric labels.
const (
	TableNormalization    = "normalization"
	TableScriptExtensions = "scx"
)

// Cached wraps p so that each table is loaded at most once. Concurrent
// requests for a table that is still loading wait for the same load.
// Failed loads are not cached.
func Cached(p Provider) Provider {
	if c, ok := p.(*cached); ok {
		return c
	}
	return &cached{
		inner: p,
		enums: make(map[uprops.EnumeratedProperty]*umap.Map[uint32]),
		bins:  make(map[uprops.BinaryProperty]*uset.Set),
	}
}

type cached struct {
	inner Provider
	group singleflight.Group

	mu    sync.Mutex
	norm  *NormalizationData
	scx   *ScriptExtensionsData
	enums map[uprops.EnumeratedProperty]*umap.Map[uint32]
	bins  map[uprops.BinaryProperty]*uset.Set
}

func (c *cached) Name() string { return c.inner.Name() }

func (c *cached) Normalization(ctx context.Context) (*NormalizationData, error) {
	return load(ctx, c, TableNormalization,
		func() (*NormalizationData, bool) { return c.norm, c.norm != nil },
		c.inner.Normalization,
		func(d *NormalizationData) { c.norm = d },
	)
}

func (c *cached) EnumeratedProperty(ctx context.Context, prop uprops.EnumeratedProperty) (*umap.Map[uint32], error) {
	return load(ctx, c, prop.ShortName(),
		func() (*umap.Map[uint32], bool) { m, ok := c.enums[prop]; return m, ok },
		func(ctx context.Context) (*umap.Map[uint32], error) { return c.inner.EnumeratedProperty(ctx, prop) },
		func(m *umap.Map[uint32]) { c.enums[prop] = m },
	)
}

func (c *cached) BinaryProperty(ctx context.Context, prop uprops.BinaryProperty) (*uset.Set, error) {
	return load(ctx, c, prop.ShortName(),
		func() (*uset.Set, bool) { s, ok := c.bins[prop]; return s, ok },
		func(ctx context.Context) (*uset.Set, error) { return c.inner.BinaryProperty(ctx, prop) },
		func(s *uset.Set) { c.bins[prop] = s },
	)
}

func (c *cached) ScriptExtensions(ctx context.Context) (*ScriptExtensionsData, error) {
	return load(ctx, c, TableScriptExtensions,
		func() (*ScriptExtensionsData, bool) { return c.scx, c.scx != nil },
		c.inner.ScriptExtensions,
		func(d *ScriptExtensionsData) { c.scx = d },
	)
}

// load returns the cached table or fetches it. lookup and store are called
// with c.mu held.
func load[T any](ctx context.Context, c *cached, table string,
	lookup func() (T, bool), fetch func(context.Context) (T, error), store func(T)) (T, error) {
	c.mu.Lock()
	v, ok := lookup()
	c.mu.Unlock()
	if ok {
		cacheHits.WithLabelValues(c.Name(), table).Inc()
		return v, nil
	}

	ch := c.group.DoChan(table, func() (any, error) {
		start := time.Now()
		// The load outlives any single caller's context.
		v, err := fetch(context.WithoutCancel(ctx))
		elapsed := time.Since(start)
		loadSeconds.WithLabelValues(c.Name(), table).Observe(elapsed.Seconds())
		if err != nil {
			loadErrors.WithLabelValues(c.Name(), table).Inc()
			log.WarnS("loading unicode table failed", "provider", c.Name(), "table", table, "error", err)
			return nil, err
		}
		log.InfoS("loaded unicode table", "provider", c.Name(), "table", table, "duration", elapsed)

		c.mu.Lock()
		store(v)
		c.mu.Unlock()
		return v, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
