// Package metrics defines prometheus metrics to expose
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracegate_api_request_duration_seconds",
			Help:    "Total time taken for requests in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30, 45, 60, 90, 120},
		},
		[]string{"path"},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracegate_api_provider_call_duration_seconds",
			Help:    "Time taken by outbound provider calls in seconds",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 15, 20, 30, 45, 60, 90, 120},
		},
		[]string{"model"},
	)

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracegate_api_provider_errors_total",
			Help: "Outbound provider call failures by kind",
		},
		[]string{"kind"},
	)

	SpanExportFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracegate_api_span_export_failures_total",
			Help: "Trace spans that could not be exported",
		},
	)

	InflightWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracegate_api_inflight_workers",
			Help: "Provider calls currently running on the worker pool",
		},
	)

	ResponseCodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracegate_api_status_code",
			Help: "Status Codes",
		},
		[]string{"path", "status_code"},
	)
)
