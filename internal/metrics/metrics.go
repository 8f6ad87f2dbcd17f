// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trivia"

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	QuizSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_selections_total",
		Help:      "Quiz draws by sampling strategy, scope and outcome (served or exhausted).",
	}, []string{"strategy", "scope", "outcome"})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Store failures by service operation.",
	}, []string{"op"})

	CategoryCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_cache_total",
		Help:      "Category cache lookups by result (hit, miss, error).",
	}, []string{"result"})
)
