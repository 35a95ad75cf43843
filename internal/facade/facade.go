// Package facade is the single entry point the HTTP layer and the CLI use for
// result resolution and analytics. It holds no state and never caches.
package facade

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	analytics "quiz-analytics-service/internal/analytics/core/domain"
	analyticsuc "quiz-analytics-service/internal/analytics/core/usecase"
	results "quiz-analytics-service/internal/results/core/domain"
)

var ErrUnknownMetric = errors.New("unknown metric")

type Resolver interface {
	Execute(ctx context.Context, testID string, facts results.SessionFacts) (*results.TestResult, error)
	ResolveSession(ctx context.Context, testID, sessionID string) (*results.TestResult, error)
}

type FunnelGetter interface {
	Execute(ctx context.Context, in analyticsuc.GetFunnelInput) (*analytics.FunnelReport, error)
}

type CohortGetter interface {
	Execute(ctx context.Context, weeks int) ([]analytics.CohortBucket, error)
}

type ChannelGetter interface {
	Share(ctx context.Context, r analytics.DateRange) ([]analytics.ChannelShareRow, error)
	Conversion(ctx context.Context, r analytics.DateRange) ([]analytics.ChannelConversionRow, error)
	Devices(ctx context.Context, r analytics.DateRange) ([]analytics.DeviceRow, error)
}

type Facade struct {
	resolver Resolver
	funnel   FunnelGetter
	cohorts  CohortGetter
	channels ChannelGetter
}

func New(resolver Resolver, funnel FunnelGetter, cohorts CohortGetter, channels ChannelGetter) *Facade {
	return &Facade{resolver: resolver, funnel: funnel, cohorts: cohorts, channels: channels}
}

// ResolveResult returns the id of the matching result, or nil when none matches.
func (f *Facade) ResolveResult(ctx context.Context, testID string, facts results.SessionFacts) (*string, error) {
	res, err := f.resolver.Execute(ctx, testID, facts)
	if err != nil || res == nil {
		return nil, err
	}
	id := res.ID
	return &id, nil
}

func (f *Facade) ResolveSession(ctx context.Context, testID, sessionID string) (*results.TestResult, error) {
	return f.resolver.ResolveSession(ctx, testID, sessionID)
}

// GetFunnel returns the default funnel rows: canonical steps, or the
// test-scoped steps when testID is set.
func (f *Facade) GetFunnel(ctx context.Context, r analytics.DateRange, testID string) ([]analytics.FunnelStepResult, error) {
	report, err := f.funnel.Execute(ctx, analyticsuc.GetFunnelInput{Range: r, TestID: testID})
	if err != nil {
		return nil, err
	}
	return report.Steps, nil
}

// GetFunnelReport is GetFunnel with custom steps and the share breakdown.
func (f *Facade) GetFunnelReport(ctx context.Context, in analyticsuc.GetFunnelInput) (*analytics.FunnelReport, error) {
	return f.funnel.Execute(ctx, in)
}

func (f *Facade) GetCohorts(ctx context.Context, weeks int) ([]analytics.CohortBucket, error) {
	return f.cohorts.Execute(ctx, weeks)
}

func (f *Facade) GetChannelShare(ctx context.Context, r analytics.DateRange) ([]analytics.ChannelShareRow, error) {
	return f.channels.Share(ctx, r)
}

func (f *Facade) GetChannelConversion(ctx context.Context, r analytics.DateRange) ([]analytics.ChannelConversionRow, error) {
	return f.channels.Conversion(ctx, r)
}

func (f *Facade) GetDeviceBreakdown(ctx context.Context, r analytics.DateRange) ([]analytics.DeviceRow, error) {
	return f.channels.Devices(ctx, r)
}

const (
	MetricFunnel            = "funnel"
	MetricCohorts           = "cohorts"
	MetricChannelShare      = "channel_share"
	MetricChannelConversion = "channel_conversion"
)

// Filter keys understood by Query.
const (
	FilterTestID = "test_id"
	FilterSteps  = "steps" // comma separated
	FilterWeeks  = "weeks"
)

const DefaultCohortWeeks = 8

type MetricQuery struct {
	Metric  string
	Range   analytics.DateRange
	Filters map[string]string
}

// MetricResult holds the rows of exactly one metric; the other fields are nil.
type MetricResult struct {
	Metric            string
	Funnel            *analytics.FunnelReport
	Cohorts           []analytics.CohortBucket
	ChannelShare      []analytics.ChannelShareRow
	ChannelConversion []analytics.ChannelConversionRow
}

// Query dispatches a metric by name.
func (f *Facade) Query(ctx context.Context, q MetricQuery) (*MetricResult, error) {
	out := &MetricResult{Metric: q.Metric}

	switch q.Metric {
	case MetricFunnel:
		report, err := f.funnel.Execute(ctx, analyticsuc.GetFunnelInput{
			Range:  q.Range,
			TestID: q.Filters[FilterTestID],
			Steps:  ParseSteps(q.Filters[FilterSteps]),
		})
		if err != nil {
			return nil, err
		}
		out.Funnel = report

	case MetricCohorts:
		weeks, err := parseWeeks(q.Filters[FilterWeeks])
		if err != nil {
			return nil, err
		}
		buckets, err := f.cohorts.Execute(ctx, weeks)
		if err != nil {
			return nil, err
		}
		out.Cohorts = buckets

	case MetricChannelShare:
		rows, err := f.channels.Share(ctx, q.Range)
		if err != nil {
			return nil, err
		}
		out.ChannelShare = rows

	case MetricChannelConversion:
		rows, err := f.channels.Conversion(ctx, q.Range)
		if err != nil {
			return nil, err
		}
		out.ChannelConversion = rows

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, q.Metric)
	}

	return out, nil
}

type Overview struct {
	Funnel            *analytics.FunnelReport
	ChannelShare      []analytics.ChannelShareRow
	ChannelConversion []analytics.ChannelConversionRow
}

// Overview computes the dashboard landing metrics concurrently. The first
// failure cancels the remaining queries and is returned.
func (f *Facade) Overview(ctx context.Context, r analytics.DateRange) (*Overview, error) {
	var out Overview

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		report, err := f.funnel.Execute(gCtx, analyticsuc.GetFunnelInput{Range: r})
		if err != nil {
			return err
		}
		out.Funnel = report
		return nil
	})

	g.Go(func() error {
		rows, err := f.channels.Share(gCtx, r)
		if err != nil {
			return err
		}
		out.ChannelShare = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.channels.Conversion(gCtx, r)
		if err != nil {
			return err
		}
		out.ChannelConversion = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseSteps splits a comma separated step list. Blank entries are dropped;
// validation is left to the funnel use case.
func ParseSteps(raw string) []analytics.FunnelStep {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var steps []analytics.FunnelStep
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, analytics.FunnelStep(s))
		}
	}
	return steps
}

func parseWeeks(raw string) (int, error) {
	if raw == "" {
		return DefaultCohortWeeks, nil
	}
	weeks, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", analyticsuc.ErrInvalidWeeks, raw)
	}
	return weeks, nil
}
