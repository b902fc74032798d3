package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments for the search pipeline.
type Metrics struct {
	SearchesTotal  prometheus.Counter
	CacheHits      prometheus.Counter
	MockFallbacks  prometheus.Counter
	ProviderErrors *prometheus.CounterVec
	SearchDuration prometheus.Histogram
}

// New registers the instruments under the given namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		SearchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of flight searches executed",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "The total number of searches served from cache",
		}),
		MockFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mock_fallbacks_total",
			Help:      "The total number of searches answered by the mock generator",
		}),
		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "The total number of provider call failures",
		}, []string{"operation"}),
		SearchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time taken to execute a flight search",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
