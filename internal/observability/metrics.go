// Package observability holds Prometheus collectors shared across the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nnrgconnect_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// GenerationRequests counts calls to the external generation API by feature and outcome.
	GenerationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nnrgconnect_generation_requests_total",
		Help: "Total calls to the external generation API by feature and outcome",
	}, []string{"feature", "outcome"})

	// GenerationLatency records external generation API round-trip latency.
	GenerationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nnrgconnect_generation_latency_seconds",
		Help:    "External generation API round-trip latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// UploadsStored counts stored upload files by kind (id_card, profile_pic).
	UploadsStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nnrgconnect_uploads_stored_total",
		Help: "Total number of uploaded files stored by kind",
	}, []string{"kind"})

	// ConnectionsCreated counts successfully created connection edges.
	ConnectionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nnrgconnect_connections_created_total",
		Help: "Total number of connection edges created",
	})
)
