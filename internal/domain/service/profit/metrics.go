package profit

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	providerErrors prometheus.Counter
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "profit",
			Name:      "percentage_cache_hits_total",
			Help:      "Percentage lookups served from cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "profit",
			Name:      "percentage_cache_misses_total",
			Help:      "Percentage lookups that went to the provider.",
		}),
		providerErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "profit",
			Name:      "percentage_provider_errors_total",
			Help:      "Failed percentage provider calls.",
		}),
	}

	registerer.MustRegister(m.cacheHits, m.cacheMisses, m.providerErrors)

	return m
}

// nil-safe: резолвер без метрик просто ничего не считает.

func (m *Metrics) cacheHit() {
	if m != nil {
		m.cacheHits.Inc()
	}
}

func (m *Metrics) cacheMiss() {
	if m != nil {
		m.cacheMisses.Inc()
	}
}

func (m *Metrics) providerError() {
	if m != nil {
		m.providerErrors.Inc()
	}
}
