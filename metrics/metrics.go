// Package metrics wires the module's counters and histograms into a
// dedicated Prometheus registry, kept independent of prometheus's
// package-level default registry so tests that spin up many in-process
// servers don't collide on duplicate collector registration.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the registry every collector in this package is
	// registered against.
	Registry *prometheus.Registry

	// CanonifyTotal counts outcomes of Canonify calls, labeled by the
	// ast.ErrCode string (or "ok" on success).
	CanonifyTotal *prometheus.CounterVec

	// CanonifyDuration observes wall-clock time spent inside Canonify.
	CanonifyDuration prometheus.Histogram
)

func init() {
	Reset()
}

// Reset rebuilds Registry and its collectors from scratch. Exercised by
// tests that start more than one in-process server and would otherwise
// hit "duplicate metrics collector registration attempted".
func Reset() {
	Registry = prometheus.NewRegistry()
	Registry.MustRegister(prometheus.NewGoCollector())

	CanonifyTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "abcdb_canonify_total",
			Help: "Count of canonify calls by outcome.",
		},
		[]string{"status"},
	)
	Registry.MustRegister(CanonifyTotal)

	CanonifyDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "abcdb_canonify_duration_seconds",
			Help:    "Time spent parsing and rewriting one music-code line.",
			Buckets: prometheus.DefBuckets,
		},
	)
	Registry.MustRegister(CanonifyDuration)
}

// Handler returns the /metrics HTTP handler for Registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
