package ports

import (
	"context"
	"time"

	"quiz-analytics-service/internal/analytics/core/domain"
)

type FunnelQuery struct {
	Range  domain.DateRange
	Steps  []domain.FunnelStep
	TestID string // optional
}

// EventStorePort is the read side of the event and session log.
type EventStorePort interface {
	// FetchFunnelEvents returns, for each entity and step in q.Steps, at least
	// its earliest event up to q.Range.To. The aggregator decides range
	// membership from the earliest event.
	FetchFunnelEvents(ctx context.Context, q FunnelQuery) ([]domain.FunnelEvent, error)

	FetchWebSessions(ctx context.Context, r domain.DateRange) ([]domain.WebSession, error)

	// FetchUsersBySignupWeek groups users first seen on or after from by ISO week.
	FetchUsersBySignupWeek(ctx context.Context, from time.Time) ([]domain.SignupCohort, error)

	FetchActivity(ctx context.Context, from, to time.Time) ([]domain.Activity, error)
}
