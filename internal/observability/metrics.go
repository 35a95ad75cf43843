package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	AggregationDuration *prometheus.HistogramVec
	Resolutions         *prometheus.CounterVec
	EventsIngested      *prometheus.CounterVec
	CacheLookups        *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		AggregationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quiz_analytics_aggregation_duration_seconds",
				Help:    "Time spent reading and aggregating one analytics metric",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"metric"},
		),
		Resolutions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_analytics_resolutions_total",
				Help: "Result resolutions by outcome",
			},
			[]string{"outcome"},
		),
		EventsIngested: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_analytics_events_ingested_total",
				Help: "Funnel events accepted by the ingest endpoint",
			},
			[]string{"status"},
		),
		CacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quiz_analytics_response_cache_lookups_total",
				Help: "Analytics response cache lookups",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) ObserveAggregation(metric string, start time.Time) {
	if m == nil {
		return
	}
	m.AggregationDuration.WithLabelValues(metric).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveResolution(matched bool) {
	if m == nil {
		return
	}
	outcome := "no_match"
	if matched {
		outcome = "matched"
	}
	m.Resolutions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveIngest(created bool) {
	if m == nil {
		return
	}
	status := "duplicate"
	if created {
		status = "created"
	}
	m.EventsIngested.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
