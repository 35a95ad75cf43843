package usecase

import (
	"context"
	"time"

	"quiz-analytics-service/internal/analytics/core/domain"
	"quiz-analytics-service/internal/analytics/core/ports"
	"quiz-analytics-service/internal/observability"
)

type GetChannelsUseCase struct {
	store   ports.EventStorePort
	metrics *observability.Metrics
}

func NewGetChannelsUseCase(store ports.EventStorePort, metrics *observability.Metrics) *GetChannelsUseCase {
	return &GetChannelsUseCase{store: store, metrics: metrics}
}

func (uc *GetChannelsUseCase) sessions(ctx context.Context, r domain.DateRange) ([]domain.WebSession, error) {
	if !r.Valid() {
		return nil, ErrInvalidDateRange
	}
	return uc.store.FetchWebSessions(ctx, r)
}

func (uc *GetChannelsUseCase) Share(ctx context.Context, r domain.DateRange) ([]domain.ChannelShareRow, error) {
	defer uc.metrics.ObserveAggregation("channel_share", time.Now())

	sessions, err := uc.sessions(ctx, r)
	if err != nil {
		return nil, err
	}
	return ComputeChannelShare(sessions, r)
}

func (uc *GetChannelsUseCase) Conversion(ctx context.Context, r domain.DateRange) ([]domain.ChannelConversionRow, error) {
	defer uc.metrics.ObserveAggregation("channel_conversion", time.Now())

	sessions, err := uc.sessions(ctx, r)
	if err != nil {
		return nil, err
	}
	return ComputeChannelConversion(sessions, r)
}

func (uc *GetChannelsUseCase) Devices(ctx context.Context, r domain.DateRange) ([]domain.DeviceRow, error) {
	defer uc.metrics.ObserveAggregation("devices", time.Now())

	sessions, err := uc.sessions(ctx, r)
	if err != nil {
		return nil, err
	}
	return ComputeDeviceBreakdown(sessions, r)
}
