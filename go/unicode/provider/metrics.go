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
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "unicore"
	metricsSubsystem = "provider"
)

var (
	loadSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "load_seconds",
		Help:      "Time spent loading a table from a provider.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
	}, []string{"provider", "table"})

	loadErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "load_errors_total",
		Help:      "Table loads that returned an error.",
	}, []string{"provider", "table"})

	cacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "cache_hits_total",
		Help:      "Table requests served from the cache.",
	}, []string{"provider", "table"})
)

func init() {
	prometheus.MustRegister(loadSeconds, loadErrors, cacheHits)
}
