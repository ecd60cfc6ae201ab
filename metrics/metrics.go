// Package metrics collects Prometheus instruments for path searches.
//
// Instruments:
//
//   - gridpath_searches_total{outcome}: searches by outcome (found, not_found, error)
//   - gridpath_search_visits: dequeues per search
//   - gridpath_path_length: hops of found paths
//   - gridpath_search_duration_seconds: wall time per search, adjacency build included
//   - gridpath_obstacles: blocked cells at the last search
//
// Each Collector owns its registry so that several sessions (and tests) can
// coexist without duplicate registration.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Collector holds the search instruments and the registry they live in.
type Collector struct {
	registry *prometheus.Registry

	searches  *prometheus.CounterVec
	visits    prometheus.Histogram
	pathLen   prometheus.Histogram
	duration  prometheus.Histogram
	obstacles prometheus.Gauge
}

// NewCollector creates the instruments and registers them on reg.
// A nil reg gets a fresh registry.
func NewCollector(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	c := &Collector{
		registry: reg,
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total number of path searches by outcome",
		}, []string{"outcome"}),
		visits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_visits",
			Help:    "Number of dequeues performed per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		pathLen: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_path_length",
			Help:    "Hop count of found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search latency in seconds, adjacency build included",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		obstacles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridpath_obstacles",
			Help: "Blocked cells on the board at the last search",
		}),
	}
	reg.MustRegister(c.searches, c.visits, c.pathLen, c.duration, c.obstacles)
	// pre-create label values so they export as zero
	for _, o := range []string{OutcomeFound, OutcomeNotFound, OutcomeError} {
		c.searches.WithLabelValues(o)
	}
	return c
}

// Registry returns the registry the instruments are registered on.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Searches returns the search counter for outcome.
func (c *Collector) Searches(outcome string) prometheus.Counter {
	return c.searches.WithLabelValues(outcome)
}

// RecordSearch records a completed search. pathLen is ignored unless found.
func (c *Collector) RecordSearch(found bool, visits, pathLen int, elapsed time.Duration) {
	outcome := OutcomeNotFound
	if found {
		outcome = OutcomeFound
		c.pathLen.Observe(float64(pathLen))
	}
	c.searches.WithLabelValues(outcome).Inc()
	c.visits.Observe(float64(visits))
	c.duration.Observe(elapsed.Seconds())
}

// RecordError counts a search that failed with an error.
func (c *Collector) RecordError() {
	c.searches.WithLabelValues(OutcomeError).Inc()
}

// SetObstacles records the current obstacle count.
func (c *Collector) SetObstacles(n int) {
	c.obstacles.Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// NewServer returns an HTTP server serving Handler on /metrics at the given port.
func (c *Collector) NewServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
