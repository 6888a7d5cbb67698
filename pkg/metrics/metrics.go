// Package metrics holds the prometheus collectors of the service.
// All methods are safe on a nil *Metrics, which is what callers get when metrics are disabled.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллекторы сервиса
type Metrics struct {
	service string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SlotsPerDay    *prometheus.HistogramVec
	FitSlotsTotal  *prometheus.CounterVec
	RecordsDropped *prometheus.CounterVec

	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	CacheRequests *prometheus.CounterVec
}

// New создает коллекторы и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает коллекторы и регистрирует их в reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		SlotsPerDay: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agenda_slots_per_day",
			Help:    "Number of presented slots in a computed day.",
			Buckets: []float64{0, 8, 16, 24, 32, 40, 48, 64, 96},
		}, []string{"service", "source"}),

		FitSlotsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agenda_fit_slots_total",
			Help: "Total number of fit slots found.",
		}, []string{"service"}),

		RecordsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agenda_records_dropped_total",
			Help: "Backend records dropped during normalization.",
		}, []string{"service", "reason"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency.",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation", "status"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state.",
		}, []string{"service", "state"}),

		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Schedule cache lookups by result.",
		}, []string{"service", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SlotsPerDay,
		m.FitSlotsTotal,
		m.RecordsDropped,
		m.DBQueryDuration,
		m.DBConnections,
		m.CacheRequests,
	)

	return m
}

// ObserveHTTP учитывает один HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, path).Observe(d.Seconds())
}

// ObserveDay учитывает результат расчета одного дня
func (m *Metrics) ObserveDay(source string, slots, fitSlots int) {
	if m == nil {
		return
	}
	m.SlotsPerDay.WithLabelValues(m.service, source).Observe(float64(slots))
	m.FitSlotsTotal.WithLabelValues(m.service).Add(float64(fitSlots))
}

// RecordsDroppedBy учитывает отброшенные при нормализации записи
func (m *Metrics) RecordsDroppedBy(reasons map[string]int) {
	if m == nil {
		return
	}
	for reason, n := range reasons {
		m.RecordsDropped.WithLabelValues(m.service, reason).Add(float64(n))
	}
}

// ObserveDBQuery учитывает один запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(m.service, operation, status).Observe(d.Seconds())
}

// SetDBStats публикует состояние пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues(m.service, "open").Set(float64(stats.OpenConnections))
	m.DBConnections.WithLabelValues(m.service, "in_use").Set(float64(stats.InUse))
	m.DBConnections.WithLabelValues(m.service, "idle").Set(float64(stats.Idle))
}

// CacheResult учитывает обращение к кэшу: hit, miss, error
func (m *Metrics) CacheResult(result string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(m.service, result).Inc()
}
