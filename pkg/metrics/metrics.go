package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"agro/pkg/apperr"
)

// Metrics holds the registry's collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	EntityWrites      *prometheus.CounterVec
	DashboardDuration *prometheus.HistogramVec
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "agro_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agro_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		EntityWrites: f.NewCounterVec(prometheus.CounterOpts{
			Name: "agro_entity_writes_total",
			Help: "Entity create/update/delete attempts by entity, operation and outcome",
		}, []string{"entity", "op", "outcome"}),
		DashboardDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agro_dashboard_query_duration_seconds",
			Help:    "Dashboard aggregate query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"aggregate"}),
	}
}

// ObserveWrite records a write outcome: "ok" or the error kind.
func (m *Metrics) ObserveWrite(entity, op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = apperr.KindOf(err).String()
	}
	m.EntityWrites.WithLabelValues(entity, op, outcome).Inc()
}

// ObserveDashboard records an aggregate's duration. Call with time.Now() taken at the start.
func (m *Metrics) ObserveDashboard(aggregate string, start time.Time) {
	if m == nil {
		return
	}
	m.DashboardDuration.WithLabelValues(aggregate).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
