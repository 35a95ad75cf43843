package ports

import (
	"context"
	"time"

	"quiz-analytics-service/internal/volume/core/domain"
)

type VolumeFilter struct {
	Step     string
	From     time.Time
	To       time.Time
	TestID   string // optional
	GroupBy  domain.GroupBy
	Interval domain.Interval // set only when GroupBy is GroupTime
}

type VolumeReaderPort interface {
	CountStepEvents(ctx context.Context, f VolumeFilter) (*domain.StepVolume, error)
}
