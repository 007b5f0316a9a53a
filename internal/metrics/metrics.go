package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_http_requests_total",
			Help: "HTTP requests processed, by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "library_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	BorrowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_borrows_total",
			Help: "Borrow transactions, by outcome.",
		},
		[]string{"outcome"},
	)
)

const (
	OutcomeSuccess      = "success"
	OutcomeNotFound     = "not_found"
	OutcomeInsufficient = "insufficient_copies"
	OutcomeError        = "error"
)
