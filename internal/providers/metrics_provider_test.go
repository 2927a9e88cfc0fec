package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"schultafel/internal/structures"
)

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "1xx", httpStatusBucket(100))
	assert.Equal(t, "2xx", httpStatusBucket(200))
	assert.Equal(t, "2xx", httpStatusBucket(204))
	assert.Equal(t, "3xx", httpStatusBucket(301))
	assert.Equal(t, "4xx", httpStatusBucket(404))
	assert.Equal(t, "5xx", httpStatusBucket(502))
}

func TestNewMetricsProvider_DisabledReturnsNoop(t *testing.T) {
	conf := &structures.Config{}
	m := NewMetricsProvider(conf)

	assert.IsType(t, &noopMetrics{}, m)

	// All no-op calls must be safe.
	m.IncRequestsTotal("/timetable", 200)
	m.ObserveRequestDuration("/timetable", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncWeekFetches("ok")
	m.ObserveFetchDuration(time.Millisecond)
	m.ObserveSearchDays(3)
	m.SetLastRefresh(time.Now())
}
