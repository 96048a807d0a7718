package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Lookup Metrics
var (
	PriceFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceFetches,
			Help: HelpTextPriceFetches,
		},
		[]string{LabelEndpoint, LabelResult},
	)

	PriceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceCacheHits,
			Help: HelpTextPriceCacheHits,
		},
	)

	PriceCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceCacheMisses,
			Help: HelpTextPriceCacheMisses,
		},
	)

	HiscoreLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHiscoreLookups,
			Help: HelpTextHiscoreLookups,
		},
		[]string{LabelResult},
	)
)

// Business Metrics
var (
	HerbCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHerbCalculations,
			Help: HelpTextHerbCalculations,
		},
		[]string{LabelResult},
	)

	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand, LabelResult},
	)
)

// ResultLabel maps an error to the result label value.
func ResultLabel(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
