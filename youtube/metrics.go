package youtube

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ytube_client",
			Name:      "requests_total",
			Help:      "Resource operations by outcome (ok or error kind).",
		},
		[]string{"resource", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ytube_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of YouTube API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource"},
	)
)
