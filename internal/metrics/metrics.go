// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DepositsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deposit_created_total",
		Help: "Total number of deposits successfully stored.",
	})

	EventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deposit_events_published_total",
		Help: "Total number of creation events delivered to the broker.",
	})

	EventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deposit_events_failed_total",
		Help: "Total number of creation events that failed to publish after a successful write.",
	})

	FallbackResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deposit_fallback_total",
		Help: "Total number of degraded-mode default responses served, by operation.",
	}, []string{"operation"})
)
