package ports

import (
	"context"

	"quiz-analytics-service/internal/events/core/domain"
)

// EventRepositoryPort appends funnel events. Writes are idempotent on
// Event.DedupeKey: a replayed event reports created=false with a nil error.
type EventRepositoryPort interface {
	InsertEvent(ctx context.Context, e *domain.Event) (created bool, err error)
}
