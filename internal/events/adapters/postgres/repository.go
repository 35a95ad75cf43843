package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"quiz-analytics-service/internal/events/core/domain"
	"quiz-analytics-service/internal/events/core/ports"
)

type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

const insertEventSQL = `
INSERT INTO funnel_events (
    event_name,
    session_id,
    user_id,
    test_id,
    share_channel,
    event_time,
    metadata,
    dedupe_key
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

// InsertEvent stores e unless an event with the same dedupe key exists.
// Optional ids are written as NULL and a nil metadata map as '{}'.
func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return false, fmt.Errorf("encode metadata: %w", err)
	}

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.Step,
		e.SessionID,
		nullable(e.UserID),
		nullable(e.TestID),
		nullable(e.ShareChannel),
		e.EventTime,
		metadataJSON,
		e.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
