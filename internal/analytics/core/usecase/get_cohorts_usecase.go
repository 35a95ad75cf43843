package usecase

import (
	"context"
	"time"

	"quiz-analytics-service/internal/analytics/core/domain"
	"quiz-analytics-service/internal/analytics/core/ports"
	"quiz-analytics-service/internal/observability"
)

type GetCohortsUseCase struct {
	store   ports.EventStorePort
	metrics *observability.Metrics
	now     func() time.Time
}

// NewGetCohortsUseCase uses time.Now when now is nil.
func NewGetCohortsUseCase(store ports.EventStorePort, metrics *observability.Metrics, now func() time.Time) *GetCohortsUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetCohortsUseCase{store: store, metrics: metrics, now: now}
}

func (uc *GetCohortsUseCase) Execute(ctx context.Context, weeks int) ([]domain.CohortBucket, error) {
	defer uc.metrics.ObserveAggregation("cohorts", time.Now())

	if weeks < 1 || weeks > MaxCohortWeeks {
		return nil, ErrInvalidWeeks
	}

	now := uc.now().UTC()
	from := CohortWindowStart(weeks, now)

	signups, err := uc.store.FetchUsersBySignupWeek(ctx, from)
	if err != nil {
		return nil, err
	}

	activity, err := uc.store.FetchActivity(ctx, from, now)
	if err != nil {
		return nil, err
	}

	return ComputeCohorts(signups, activity, weeks, now)
}
