package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records pipeline, cache and HTTP events as Prometheus metrics on
// its own registry, so several collectors can coexist in tests.
type Collector struct {
	registry *prometheus.Registry

	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	GraphNodes        prometheus.Histogram

	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
	CacheBytes  *prometheus.CounterVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge
}

// NewCollector builds and registers every metric under namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Pipeline operations by name and outcome",
			},
			[]string{"operation", "status"},
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Pipeline operation duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"operation"},
		),
		GraphNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graph_nodes",
				Help:      "Node count of analyzed graphs",
				Buckets:   prometheus.ExponentialBuckets(4, 2, 10),
			},
		),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Cache hits by product kind",
			},
			[]string{"kind"},
		),
		CacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_misses_total",
				Help:      "Cache misses by product kind",
			},
			[]string{"kind"},
		),
		CacheBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_written_bytes_total",
				Help:      "Bytes written to the cache by product kind",
			},
			[]string{"kind"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "HTTP requests currently being served",
			},
		),
	}

	c.registry.MustRegister(
		c.Operations,
		c.OperationDuration,
		c.GraphNodes,
		c.CacheHits,
		c.CacheMisses,
		c.CacheBytes,
		c.HTTPRequests,
		c.HTTPDuration,
		c.HTTPInFlight,
	)
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) OnOperationStart(_ context.Context, _ string, nodeCount, _ int) {
	c.GraphNodes.Observe(float64(nodeCount))
}

func (c *Collector) OnOperationComplete(_ context.Context, op string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.Operations.WithLabelValues(op, status).Inc()
	c.OperationDuration.WithLabelValues(op).Observe(d.Seconds())
}

func (c *Collector) OnCacheHit(_ context.Context, kind string) {
	c.CacheHits.WithLabelValues(kind).Inc()
}

func (c *Collector) OnCacheMiss(_ context.Context, kind string) {
	c.CacheMisses.WithLabelValues(kind).Inc()
}

func (c *Collector) OnCacheSet(_ context.Context, kind string, size int) {
	c.CacheBytes.WithLabelValues(kind).Add(float64(size))
}

func (c *Collector) OnRequest(context.Context, string, string) {
	c.HTTPInFlight.Inc()
}

func (c *Collector) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	c.HTTPInFlight.Dec()
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*Collector)(nil)
	_ CacheHooks    = (*Collector)(nil)
	_ HTTPHooks     = (*Collector)(nil)
)
