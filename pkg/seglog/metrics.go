// Copyright 2026 kvmesh contributors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seglog

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the prometheus instrumentation for a SegmentLog. This
// package has no ambient registry to piggyback on, so NewMetrics takes
// the caller's *prometheus.Registry explicitly and registers against it
// directly, using prometheus.New* rather than promauto so construction
// and registration stay visible at the call site.
type Metrics struct {
	Appends           prometheus.Counter
	AppendsRejected   *prometheus.CounterVec
	Rollovers         prometheus.Counter
	IntegrityFailures prometheus.Counter
	SegletsInUse      prometheus.Gauge
	OpenSegments      prometheus.Gauge
}

// NewMetrics constructs and registers a Metrics against reg. Passing a
// fresh *prometheus.Registry per SegmentLog (rather than relying on a
// global default) keeps multiple SegmentLogs in one process from
// colliding on metric names, matching this package's avoidance of
// package-level mutable state.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Appends: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seglog_appends_total",
			Help: "Count of successful Segment.Append calls across all segments in this log.",
		}),
		AppendsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seglog_appends_rejected_total",
			Help: "Count of rejected append attempts, labeled by reason.",
		}, []string{"reason"}),
		Rollovers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seglog_rollovers_total",
			Help: "Count of times the log closed its open segment and opened a new one.",
		}),
		IntegrityFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seglog_integrity_failures_total",
			Help: "Count of CheckMetadataIntegrity failures observed by this log.",
		}),
		SegletsInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seglog_seglets_in_use",
			Help: "Seglets currently on loan from the pool across all segments this log holds.",
		}),
		OpenSegments: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seglog_open_segments",
			Help: "1 if this log currently has an open (appendable) segment, 0 otherwise.",
		}),
	}
	reg.MustRegister(
		m.Appends,
		m.AppendsRejected,
		m.Rollovers,
		m.IntegrityFailures,
		m.SegletsInUse,
		m.OpenSegments,
	)
	return m
}
