package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"schultafel/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncWeekFetches(outcome string)
	ObserveFetchDuration(duration time.Duration)
	ObserveSearchDays(days int)
	SetLastRefresh(t time.Time)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	weekFetches     *prometheus.CounterVec
	fetchDuration   prometheus.Histogram
	searchDays      prometheus.Histogram
	lastRefresh     prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncWeekFetches(outcome string) {
	m.weekFetches.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) ObserveFetchDuration(duration time.Duration) {
	m.fetchDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) ObserveSearchDays(days int) {
	m.searchDays.Observe(float64(days))
}

func (m *MetricsProvider) SetLastRefresh(t time.Time) {
	m.lastRefresh.Set(float64(t.Unix()))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "schultafel_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "schultafel_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "schultafel_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "schultafel_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		weekFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "schultafel_week_fetches_total",
			Help: "Total number of week journal fetches by outcome",
		}, []string{"outcome"}),

		fetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "schultafel_fetch_duration_seconds",
			Help:    "Week journal fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		searchDays: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "schultafel_search_days_off",
			Help:    "Days skipped by the holiday search per resolution",
			Buckets: []float64{0, 1, 2, 3, 5, 7, 14, 21},
		}),

		lastRefresh: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "schultafel_last_refresh_timestamp_seconds",
			Help: "Unix time of the last successful timetable refresh",
		}),
	}

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncWeekFetches(_ string)                          {}
func (n *noopMetrics) ObserveFetchDuration(_ time.Duration)             {}
func (n *noopMetrics) ObserveSearchDays(_ int)                          {}
func (n *noopMetrics) SetLastRefresh(_ time.Time)                       {}
