package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	upstreamRequests   *prometheus.CounterVec
	tokenRefreshTotal  *prometheus.CounterVec
	codeExchangeTotal  *prometheus.CounterVec
	fanOutDuration     prometheus.Histogram
	fanOutAccountCount prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		upstreamRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregator_upstream_requests_total",
				Help: "Total number of requests issued to the aggregator data API",
			},
			[]string{"resource", "status"},
		),
		tokenRefreshTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "token_refresh_total",
				Help: "Total number of refresh-token exchanges",
			},
			[]string{"outcome"},
		),
		codeExchangeTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "code_exchange_total",
				Help: "Total number of authorization-code exchanges",
			},
			[]string{"outcome"},
		),
		fanOutDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fan_out_duration_milliseconds",
				Help:    "Duration of the per-account fan-out barrier in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		fanOutAccountCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fan_out_account_count",
				Help:    "Number of accounts fanned out per aggregate request",
				Buckets: prometheus.LinearBuckets(1, 1, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "upstream_request":
		m.upstreamRequests.WithLabelValues(tags["resource"], tags["status"]).Inc()
	case "token_refresh":
		m.tokenRefreshTotal.WithLabelValues(tags["outcome"]).Inc()
	case "code_exchange":
		m.codeExchangeTotal.WithLabelValues(tags["outcome"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "fan_out":
		m.fanOutDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "fan_out_accounts":
		m.fanOutAccountCount.Observe(value)
	}
}

// NoopMetrics discards every observation. Used in tests and when metrics are
// disabled.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(name string, tags map[string]string)            {}
func (NoopMetrics) RecordProcessingTime(name string, duration time.Duration)        {}
func (NoopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}
