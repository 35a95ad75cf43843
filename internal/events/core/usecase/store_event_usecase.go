package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	analytics "quiz-analytics-service/internal/analytics/core/domain"
	"quiz-analytics-service/internal/events/core/domain"
	"quiz-analytics-service/internal/events/core/ports"
	"quiz-analytics-service/internal/observability"
)

var (
	ErrInvalidEvent = errors.New("invalid event")
	ErrFutureTime   = errors.New("timestamp cannot be in the future")
)

// Namespace for dedupe keys; changing it re-keys every stored event.
var dedupeNamespace = uuid.MustParse("6f1c3c2e-8d7a-4b0e-9a51-2f4e7c9d1b30")

// Events may arrive slightly ahead of the server clock.
const maxClockSkew = time.Minute

type StoreEventUseCase struct {
	repo    ports.EventRepositoryPort
	metrics *observability.Metrics
	now     func() time.Time
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort, metrics *observability.Metrics) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo, metrics: metrics, now: time.Now}
}

type StoreEventInput struct {
	Step         string
	SessionID    string
	UserID       string
	TestID       string
	ShareChannel string
	Timestamp    int64
	Metadata     map[string]any
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	eventTime := time.Unix(in.Timestamp, 0).UTC()

	if in.Metadata == nil {
		in.Metadata = map[string]any{}
	}

	e := &domain.Event{
		Step:         in.Step,
		SessionID:    in.SessionID,
		UserID:       in.UserID,
		TestID:       in.TestID,
		ShareChannel: in.ShareChannel,
		EventTime:    eventTime,
		Metadata:     in.Metadata,
		DedupeKey:    buildDedupeKey(in, eventTime),
	}

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return false, err
	}

	uc.metrics.ObserveIngest(created)
	return created, nil
}

// step + session + user + test + unix seconds, hashed into a UUIDv5.
func buildDedupeKey(in StoreEventInput, t time.Time) string {
	name := fmt.Sprintf("%s|%s|%s|%s|%d",
		in.Step,
		in.SessionID,
		in.UserID,
		in.TestID,
		t.Unix(),
	)
	return uuid.NewSHA1(dedupeNamespace, []byte(name)).String()
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateEvents validates the whole batch before writing any of it.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	for i, ev := range in.Events {
		if err := uc.validateInput(ev); err != nil {
			return res, fmt.Errorf("events[%d]: %w", i, err)
		}
	}

	for _, ev := range in.Events {
		ok, err := uc.Execute(ctx, ev)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) error {
	step := analytics.FunnelStep(in.Step)
	if !step.Valid() {
		return fmt.Errorf("%w: unknown step %q", ErrInvalidEvent, in.Step)
	}
	if in.SessionID == "" {
		return fmt.Errorf("%w: session_id is required", ErrInvalidEvent)
	}
	if in.Timestamp <= 0 {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidEvent)
	}

	switch step {
	case analytics.StepTestStart, analytics.StepTestComplete:
		if in.TestID == "" {
			return fmt.Errorf("%w: test_id is required for %s", ErrInvalidEvent, step)
		}
	case analytics.StepShare:
	default:
		if in.ShareChannel != "" {
			return fmt.Errorf("%w: share_channel is only valid for share", ErrInvalidEvent)
		}
	}

	if in.Timestamp > uc.now().Add(maxClockSkew).Unix() {
		return ErrFutureTime
	}

	return nil
}
