package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"quiz-analytics-service/internal/analytics/core/domain"
	"quiz-analytics-service/internal/analytics/core/ports"
	"quiz-analytics-service/internal/platform/sqldb"
)

type RowScanner = sqldb.RowScanner

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type EventStoreRepository struct {
	db DB
}

func NewEventStoreRepository(db DB) *EventStoreRepository {
	return &EventStoreRepository{db: db}
}

var _ ports.EventStorePort = (*EventStoreRepository)(nil)

// Entity key per funnel scope; mirrors the aggregator so DISTINCT ON keeps
// exactly one earliest row per counted entity and step.
const (
	sessionEntity = `session_id`
	userEntity    = `COALESCE(user_id, 'session:' || session_id)`
)

func (r *EventStoreRepository) FetchFunnelEvents(ctx context.Context, q ports.FunnelQuery) ([]domain.FunnelEvent, error) {
	steps := make([]string, 0, len(q.Steps))
	for _, s := range q.Steps {
		steps = append(steps, string(s))
	}

	entity := userEntity
	where := "event_name = ANY($1) AND event_time <= $2"
	args := []any{pq.Array(steps), q.Range.To.UTC()}

	if q.TestID != "" {
		entity = sessionEntity
		where += " AND test_id = $3"
		args = append(args, q.TestID)
	}

	query := `
SELECT DISTINCT ON (entity, event_name)
    event_name, session_id, user_id, test_id, share_channel, event_time
FROM (
    SELECT *, ` + entity + ` AS entity
    FROM funnel_events
    WHERE ` + where + `
) e
WHERE entity IS NOT NULL
ORDER BY entity, event_name, event_time`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FunnelEvent
	for rows.Next() {
		var (
			step                                    string
			sessionID, userID, testID, shareChannel sql.NullString
			at                                      time.Time
		)
		if err := rows.Scan(&step, &sessionID, &userID, &testID, &shareChannel, &at); err != nil {
			return nil, fmt.Errorf("scan funnel event: %w", err)
		}
		out = append(out, domain.FunnelEvent{
			Step:         domain.FunnelStep(step),
			SessionID:    sessionID.String,
			UserID:       userID.String,
			TestID:       testID.String,
			ShareChannel: shareChannel.String,
			OccurredAt:   at.UTC(),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

const selectWebSessionsSQL = `
SELECT id, channel, landing_page, device_type, converted, started_at
FROM web_sessions
WHERE started_at BETWEEN $1 AND $2
ORDER BY started_at`

func (r *EventStoreRepository) FetchWebSessions(ctx context.Context, dr domain.DateRange) ([]domain.WebSession, error) {
	rows, err := r.db.QueryContext(ctx, selectWebSessionsSQL, dr.From.UTC(), dr.To.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WebSession
	for rows.Next() {
		var (
			s                       domain.WebSession
			channel                 string
			landingPage, deviceType sql.NullString
		)
		if err := rows.Scan(&s.ID, &channel, &landingPage, &deviceType, &s.Converted, &s.StartedAt); err != nil {
			return nil, fmt.Errorf("scan web session: %w", err)
		}
		s.Channel = domain.NormalizeChannel(channel)
		s.LandingPage = landingPage.String
		s.DeviceType = deviceType.String
		s.StartedAt = s.StartedAt.UTC()
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// A user's signup week is the ISO week of their first event of any kind.
// date_trunc('week') truncates to Monday.
const selectSignupWeeksSQL = `
SELECT
    date_trunc('week', first_seen AT TIME ZONE 'UTC') AS week_start,
    array_agg(user_id ORDER BY user_id) AS user_ids
FROM (
    SELECT user_id, MIN(event_time) AS first_seen
    FROM funnel_events
    WHERE user_id IS NOT NULL
    GROUP BY user_id
) u
WHERE first_seen >= $1
GROUP BY week_start
ORDER BY week_start`

func (r *EventStoreRepository) FetchUsersBySignupWeek(ctx context.Context, from time.Time) ([]domain.SignupCohort, error) {
	rows, err := r.db.QueryContext(ctx, selectSignupWeeksSQL, from.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SignupCohort
	for rows.Next() {
		var (
			weekStart time.Time
			userIDs   []string
		)
		if err := rows.Scan(&weekStart, pq.Array(&userIDs)); err != nil {
			return nil, fmt.Errorf("scan signup week: %w", err)
		}
		out = append(out, domain.SignupCohort{
			WeekStart: time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, time.UTC),
			UserIDs:   userIDs,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// One row per user and active day is enough for weekly retention.
const selectActivitySQL = `
SELECT DISTINCT user_id, date_trunc('day', event_time AT TIME ZONE 'UTC') AS active_day
FROM funnel_events
WHERE user_id IS NOT NULL AND event_time BETWEEN $1 AND $2
ORDER BY active_day, user_id`

func (r *EventStoreRepository) FetchActivity(ctx context.Context, from, to time.Time) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, selectActivitySQL, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		var (
			userID string
			day    time.Time
		)
		if err := rows.Scan(&userID, &day); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, domain.Activity{
			UserID:     userID,
			OccurredAt: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
