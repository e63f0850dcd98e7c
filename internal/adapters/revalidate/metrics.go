package revalidate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultDelivered = "delivered"
	resultFailed    = "failed"
	resultDropped   = "dropped"
)

var (
	invalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventboard_page_invalidations_total",
			Help: "Page invalidation signals by sink and result",
		},
		[]string{"sink", "result"},
	)

	invalidationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventboard_page_invalidation_duration_seconds",
			Help:    "Time spent delivering a page invalidation signal",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"sink"},
	)
)
