package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordsOutcomes(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveResolution(true)
	m.ObserveResolution(false)
	m.ObserveResolution(false)
	m.ObserveIngest(true)
	m.ObserveCache(false)
	m.ObserveAggregation("funnel", time.Now())

	if got := testutil.ToFloat64(m.Resolutions.WithLabelValues("matched")); got != 1 {
		t.Fatalf("expected 1 matched resolution, got %v", got)
	}
	if got := testutil.ToFloat64(m.Resolutions.WithLabelValues("no_match")); got != 2 {
		t.Fatalf("expected 2 no_match resolutions, got %v", got)
	}
	if got := testutil.ToFloat64(m.EventsIngested.WithLabelValues("created")); got != 1 {
		t.Fatalf("expected 1 created event, got %v", got)
	}
	if got := testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")); got != 1 {
		t.Fatalf("expected 1 cache miss, got %v", got)
	}
	if n := testutil.CollectAndCount(m.AggregationDuration); n != 1 {
		t.Fatalf("expected 1 histogram series, got %d", n)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	m.ObserveResolution(true)
	m.ObserveIngest(false)
	m.ObserveCache(true)
	m.ObserveAggregation("cohorts", time.Now())
}
