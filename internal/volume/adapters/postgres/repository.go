package postgres

import (
	"context"
	"fmt"
	"time"

	"quiz-analytics-service/internal/platform/sqldb"
	"quiz-analytics-service/internal/volume/core/domain"
	"quiz-analytics-service/internal/volume/core/ports"
)

type RowScanner = sqldb.RowScanner

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type VolumeRepository struct {
	db DB
}

func NewVolumeRepository(db DB) *VolumeRepository {
	return &VolumeRepository{db: db}
}

var _ ports.VolumeReaderPort = (*VolumeRepository)(nil)

func (r *VolumeRepository) CountStepEvents(ctx context.Context, f ports.VolumeFilter) (*domain.StepVolume, error) {
	where := "event_name = $1 AND event_time BETWEEN $2 AND $3"
	args := []any{f.Step, f.From, f.To}

	if f.TestID != "" {
		args = append(args, f.TestID)
		where += fmt.Sprintf(" AND test_id = $%d", len(args))
	}

	res := &domain.StepVolume{
		Step:     f.Step,
		From:     f.From,
		To:       f.To,
		TestID:   f.TestID,
		GroupBy:  f.GroupBy,
		Interval: f.Interval,
	}

	// Totals come from their own query: summing per-group distinct counts
	// would count a session once per share channel.
	if err := r.queryTotals(ctx, where, args, res); err != nil {
		return nil, err
	}

	var err error
	switch f.GroupBy {
	case domain.GroupNone:
		return res, nil
	case domain.GroupShareChannel:
		res.Groups, err = r.queryGroupByShareChannel(ctx, where, args)
	case domain.GroupTime:
		res.Groups, err = r.queryGroupByTime(ctx, where, args, f.Interval)
	default:
		return nil, fmt.Errorf("unsupported group_by: %q", f.GroupBy)
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *VolumeRepository) queryTotals(ctx context.Context, where string, args []any, res *domain.StepVolume) error {
	query := `
SELECT
    COUNT(*) AS total_events,
    COUNT(DISTINCT session_id) AS unique_sessions
FROM funnel_events
WHERE ` + where

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&res.TotalEvents, &res.UniqueSessions); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (r *VolumeRepository) queryGroupByShareChannel(ctx context.Context, where string, args []any) ([]domain.VolumeGroup, error) {
	query := `
SELECT
    COALESCE(NULLIF(share_channel, ''), 'unknown') AS key,
    COUNT(*) AS total_events,
    COUNT(DISTINCT session_id) AS unique_sessions
FROM funnel_events
WHERE ` + where + `
GROUP BY key
ORDER BY key`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.VolumeGroup
	for rows.Next() {
		var g domain.VolumeGroup
		if err := rows.Scan(&g.Key, &g.TotalEvents, &g.UniqueSessions); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *VolumeRepository) queryGroupByTime(ctx context.Context, where string, args []any, interval domain.Interval) ([]domain.VolumeGroup, error) {
	args = append(args, string(interval))

	query := fmt.Sprintf(`
SELECT
    date_trunc($%d, event_time AT TIME ZONE 'UTC') AS bucket,
    COUNT(*) AS total_events,
    COUNT(DISTINCT session_id) AS unique_sessions
FROM funnel_events
WHERE %s
GROUP BY bucket
ORDER BY bucket`, len(args), where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.VolumeGroup
	for rows.Next() {
		var (
			bucket time.Time
			g      domain.VolumeGroup
		)
		if err := rows.Scan(&bucket, &g.TotalEvents, &g.UniqueSessions); err != nil {
			return nil, err
		}
		g.Key = bucket.UTC().Format(time.RFC3339)
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
