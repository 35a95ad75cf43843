package usecase

import (
	"context"
	"errors"
	"time"

	analytics "quiz-analytics-service/internal/analytics/core/domain"
	"quiz-analytics-service/internal/observability"
	"quiz-analytics-service/internal/volume/core/domain"
	"quiz-analytics-service/internal/volume/core/ports"
)

var (
	ErrInvalidStep      = errors.New("invalid funnel step")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidGroupBy   = errors.New("invalid group_by value")
	ErrInvalidInterval  = errors.New("invalid interval for time grouping")
)

type GetVolumeInput struct {
	Step     string
	From     time.Time
	To       time.Time
	TestID   string
	GroupBy  domain.GroupBy
	Interval domain.Interval // required when GroupBy is time
}

type GetVolumeUseCase struct {
	reader  ports.VolumeReaderPort
	metrics *observability.Metrics
}

func NewGetVolumeUseCase(reader ports.VolumeReaderPort, metrics *observability.Metrics) *GetVolumeUseCase {
	return &GetVolumeUseCase{reader: reader, metrics: metrics}
}

// Execute validates the input and reads the step volume.
func (uc *GetVolumeUseCase) Execute(ctx context.Context, in GetVolumeInput) (*domain.StepVolume, error) {
	defer uc.metrics.ObserveAggregation("volume", time.Now())

	if !analytics.FunnelStep(in.Step).Valid() {
		return nil, ErrInvalidStep
	}

	if in.From.IsZero() || in.To.IsZero() || in.From.After(in.To) {
		return nil, ErrInvalidTimeRange
	}

	interval := in.Interval
	switch in.GroupBy {
	case domain.GroupNone, domain.GroupShareChannel:
		interval = ""
	case domain.GroupTime:
		if interval != domain.IntervalHour && interval != domain.IntervalDay {
			return nil, ErrInvalidInterval
		}
	default:
		return nil, ErrInvalidGroupBy
	}

	return uc.reader.CountStepEvents(ctx, ports.VolumeFilter{
		Step:     in.Step,
		From:     in.From.UTC(),
		To:       in.To.UTC(),
		TestID:   in.TestID,
		GroupBy:  in.GroupBy,
		Interval: interval,
	})
}
