package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()

	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	close(ch)

	var out dto.Metric
	require.NoError(t, (<-ch).Write(&out))
	if out.Counter != nil {
		return out.Counter.GetValue()
	}
	return out.Gauge.GetValue()
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("agenda", prometheus.NewRegistry())

	m.ObserveHTTP(http.MethodGet, "/api/v1/professionals/{professionalId}/slots", 200, 10*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/professionals/{professionalId}/slots", 200, 20*time.Millisecond)
	m.ObserveDay("backend", 12, 2)
	m.RecordsDroppedBy(map[string]int{"format": 3, "invalid": 1})
	m.ObserveDBQuery("GetAppointments", time.Millisecond, errors.New("boom"))
	m.CacheResult("hit")

	assert.Equal(t, 2.0, value(t, m.HTTPRequestsTotal.WithLabelValues("agenda", "GET", "/api/v1/professionals/{professionalId}/slots", "200")))
	assert.Equal(t, 2.0, value(t, m.FitSlotsTotal.WithLabelValues("agenda")))
	assert.Equal(t, 3.0, value(t, m.RecordsDropped.WithLabelValues("agenda", "format")))
	assert.Equal(t, 1.0, value(t, m.CacheRequests.WithLabelValues("agenda", "hit")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP(http.MethodGet, "/", 200, time.Second)
		m.ObserveDay("postgres", 1, 1)
		m.RecordsDroppedBy(map[string]int{"format": 1})
		m.ObserveDBQuery("q", time.Second, nil)
		m.CacheResult("miss")
	})
}
