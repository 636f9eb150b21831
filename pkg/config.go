package cache

// config.go defines the functional options shared by every engine and
// sharded-wrapper constructor: a generic Option[K,V] closure mutating an
// unexported config, applied by applyOptions. There is deliberately no
// WeightFn (weighted eviction is out of scope) and no TTL/rotation knobs
// (this library has no time-based expiry).
//
// © 2025 arena-cache authors. MIT License.

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// EvictReason identifies why an entry left a cache. Only capacity pressure
// triggers eviction in this spec (no TTL, no weighting), so there is
// exactly one reason today; the type remains so a future revision can add
// more without an API break.
type EvictReason uint8

// ReasonCapacity is the only eviction reason this library produces: the
// clock engine's scan or the linked engine's tail-trim displaced the entry
// under capacity pressure.
const ReasonCapacity EvictReason = iota + 1

// EjectCallback is invoked synchronously, in the calling goroutine, whenever
// an entry is evicted for capacity. It must not block. It is never invoked
// for an explicit Erase — only for capacity-driven eviction.
type EjectCallback[K comparable, V any] func(key K, value V, reason EvictReason)

// Option configures a cache engine or sharded wrapper at construction.
type Option[K comparable, V any] func(*config[K, V])

// config bundles every knob that influences cache behaviour. metricsRegistry
// and metricsLabel are recorded verbatim by WithMetrics; metrics itself is
// resolved lazily by each engine constructor via resolveMetrics, since only
// the constructor knows whether it is building a standalone engine (label
// used as-is) or one shard of a sharded wrapper (label needs a per-shard
// suffix to avoid colliding Prometheus registrations).
type config[K comparable, V any] struct {
	logger          *zap.Logger
	metricsRegistry *prometheus.Registry
	metricsLabel    string
	metrics         metricsSink
	ejectCb         EjectCallback[K, V]
}

func defaultConfig[K comparable, V any]() *config[K, V] {
	return &config[K, V]{
		logger:  zap.NewNop(),
		metrics: noopMetrics{},
	}
}

// resolveMetrics finalizes cfg.metrics. autoLabel, when non-empty, is
// appended to whatever label WithMetrics recorded (or used alone if
// WithMetrics left the label blank) — sharded wrappers pass their shard
// index here so every shard registers under a distinct label.
func (cfg *config[K, V]) resolveMetrics(autoLabel string) {
	if cfg.metricsRegistry == nil {
		return
	}
	label := cfg.metricsLabel
	switch {
	case label != "" && autoLabel != "":
		label = label + "-" + autoLabel
	case autoLabel != "":
		label = autoLabel
	}
	cfg.metrics = newPromMetrics(cfg.metricsRegistry, label)
}

// WithLogger plugs an external zap.Logger into the configuration. The
// logger is stored only: no engine or wrapper in this package writes to it,
// neither on the hot path (Find/Insert/Erase) nor at construction, and
// eviction-callback panics are not recovered or logged.
func WithLogger[K comparable, V any](l *zap.Logger) Option[K, V] {
	return func(c *config[K, V]) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics enables Prometheus counters for hits/misses/evictions, scoped
// to the given shard label ("" for a standalone, unsharded engine). A nil
// registry disables metrics (the default).
func WithMetrics[K comparable, V any](reg *prometheus.Registry, shardLabel string) Option[K, V] {
	return func(c *config[K, V]) {
		c.metricsRegistry = reg
		c.metricsLabel = shardLabel
	}
}

// WithEjectCallback registers a function invoked whenever an entry is
// evicted under capacity pressure. The callback runs in the calling
// goroutine and must not block.
func WithEjectCallback[K comparable, V any](cb EjectCallback[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.ejectCb = cb
	}
}

func applyOptions[K comparable, V any](opts []Option[K, V]) *config[K, V] {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
