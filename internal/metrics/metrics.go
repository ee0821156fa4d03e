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

// Brewing Metrics
var (
	BrewRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBrewRequests,
			Help: HelpTextBrewRequests,
		},
		[]string{LabelMode, LabelOutcome},
	)

	BrewDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameBrewDuration,
			Help:    HelpTextBrewDuration,
			Buckets: BrewLatencyBuckets,
		},
		[]string{LabelMode},
	)

	CombinationsTested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCombinationsTested,
			Help: HelpTextCombinationsTested,
		},
	)

	PotionsFound = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePotionsFound,
			Help:    HelpTextPotionsFound,
			Buckets: PotionCountBuckets,
		},
	)

	BrewCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBrewCacheLookups,
			Help: HelpTextBrewCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Catalog Metrics
var (
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelOutcome},
	)

	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogEntries,
			Help: HelpTextCatalogEntries,
		},
		[]string{LabelKind},
	)
)
