// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics defines the Prometheus collectors for the document viewer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the viewer's collectors.
type Metrics struct {
	RequestCount    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RenderDuration  prometheus.Histogram
	RenderedBlocks  prometheus.Histogram
	CacheLookups    *prometheus.CounterVec
	LiveClients     prometheus.Gauge
	Reloads         prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestCount: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mdview_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mdview_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RenderDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mdview_render_duration_seconds",
				Help:    "Time to parse and render one document",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		RenderedBlocks: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mdview_rendered_blocks",
				Help:    "Number of blocks per rendered document",
				Buckets: prometheus.ExponentialBuckets(1, 4, 6),
			},
		),
		CacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mdview_render_cache_lookups_total",
				Help: "Render cache lookups by result",
			},
			[]string{"result"},
		),
		LiveClients: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "mdview_live_clients",
				Help: "Number of connected live-reload clients",
			},
		),
		Reloads: f.NewCounter(
			prometheus.CounterOpts{
				Name: "mdview_reloads_total",
				Help: "Reload notifications sent after document changes",
			},
		),
	}
}
