// Package metrics exposes the Prometheus instrumentation for the API
// and the search engine.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tripdex",
			Name:      "searches_total",
			Help:      "Total number of search pipeline invocations",
		},
		[]string{"domain"},
	)

	searchResultCount = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tripdex",
			Name:      "search_result_count",
			Help:      "Number of offers generated per search",
			Buckets:   []float64{4, 5, 6, 7},
		},
		[]string{"domain"},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal)
	prometheus.MustRegister(searchResultCount)
}

// ObserveSearch records one completed search and its result count.
func ObserveSearch(domain string, results int) {
	searchesTotal.WithLabelValues(domain).Inc()
	searchResultCount.WithLabelValues(domain).Observe(float64(results))
}
