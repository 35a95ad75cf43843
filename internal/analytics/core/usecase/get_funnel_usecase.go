package usecase

import (
	"context"
	"time"

	"quiz-analytics-service/internal/analytics/core/domain"
	"quiz-analytics-service/internal/analytics/core/ports"
	"quiz-analytics-service/internal/observability"
)

type GetFunnelInput struct {
	Range  domain.DateRange
	TestID string              // optional; switches to the test-scoped funnel
	Steps  []domain.FunnelStep // optional
}

type GetFunnelUseCase struct {
	store   ports.EventStorePort
	metrics *observability.Metrics
}

func NewGetFunnelUseCase(store ports.EventStorePort, metrics *observability.Metrics) *GetFunnelUseCase {
	return &GetFunnelUseCase{store: store, metrics: metrics}
}

func (uc *GetFunnelUseCase) Execute(ctx context.Context, in GetFunnelInput) (*domain.FunnelReport, error) {
	defer uc.metrics.ObserveAggregation("funnel", time.Now())

	if !in.Range.Valid() {
		return nil, ErrInvalidDateRange
	}

	filter := domain.FunnelFilter{TestID: in.TestID}

	steps, err := NormalizeSteps(in.Steps, filter)
	if err != nil {
		return nil, err
	}

	// share events are always fetched for the breakdown
	fetchSteps := steps
	if !containsStep(steps, domain.StepShare) {
		fetchSteps = append(append([]domain.FunnelStep(nil), steps...), domain.StepShare)
	}

	events, err := uc.store.FetchFunnelEvents(ctx, ports.FunnelQuery{
		Range:  in.Range,
		Steps:  fetchSteps,
		TestID: in.TestID,
	})
	if err != nil {
		return nil, err
	}

	rows, err := ComputeFunnel(events, steps, in.Range, filter)
	if err != nil {
		return nil, err
	}

	return &domain.FunnelReport{
		Range:  in.Range,
		TestID: in.TestID,
		Steps:  rows,
		Shares: ShareBreakdown(events, in.Range, filter),
	}, nil
}

func containsStep(steps []domain.FunnelStep, s domain.FunnelStep) bool {
	for _, x := range steps {
		if x == s {
			return true
		}
	}
	return false
}
