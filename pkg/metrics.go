package cache

// metrics.go is a thin abstraction over Prometheus so every engine works
// with or without metrics. When the caller passes a *prometheus.Registry
// via WithMetrics, labeled counters are registered; otherwise a no-op sink
// is used and the hot path never pays for a metric update. The sink
// interface keeps a no-op and a real Prometheus-backed implementation
// interchangeable, trimmed to the three counters these engines produce (no
// arena or generation-rotation counters — this library has neither).
//
// © 2025 arena-cache authors. MIT License.

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metricsSink is the internal interface abstracting the concrete backend
// (Prometheus vs. no-op). Not exposed outside the package.
type metricsSink interface {
	incHit()
	incMiss()
	incEvict()
}

type noopMetrics struct{}

func (noopMetrics) incHit()   {}
func (noopMetrics) incMiss()  {}
func (noopMetrics) incEvict() {}

type promMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
}

// newPromMetrics builds a fresh counter set under the given shard label.
// Each call registers new Counter instances, so callers (sharded wrappers
// included) must give every call a distinct shardLabel or reg.MustRegister
// panics on the duplicate.
func newPromMetrics(reg *prometheus.Registry, shardLabel string) *promMetrics {
	labels := prometheus.Labels{"shard": shardLabel}

	pm := &promMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lrucache",
			Name:        "hits_total",
			Help:        "Number of cache hits.",
			ConstLabels: labels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lrucache",
			Name:        "misses_total",
			Help:        "Number of cache misses.",
			ConstLabels: labels,
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "lrucache",
			Name:        "evictions_total",
			Help:        "Number of entries evicted under capacity pressure.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(pm.hits, pm.misses, pm.evictions)
	return pm
}

func (m *promMetrics) incHit()   { m.hits.Inc() }
func (m *promMetrics) incMiss()  { m.misses.Inc() }
func (m *promMetrics) incEvict() { m.evictions.Inc() }
