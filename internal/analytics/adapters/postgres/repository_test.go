package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"quiz-analytics-service/internal/analytics/core/domain"
	"quiz-analytics-service/internal/analytics/core/ports"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows [][]any
	i    int
	err  error
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case sql.Scanner:
			if err := d.Scan(row[i]); err != nil {
				return err
			}
		case *string:
			v, ok := row[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *bool:
			v, ok := row[i].(bool)
			if !ok {
				return errors.New("type assertion to bool failed")
			}
			*d = v
		case *time.Time:
			v, ok := row[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

var (
	from = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC)
)

// ------------------------------------------------------------
// FUNNEL EVENTS
// ------------------------------------------------------------

func TestFetchFunnelEvents_Global(t *testing.T) {
	at := from.Add(time.Hour)
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{
				{"visit", "s1", nil, nil, nil, at},
				{"share", "s2", "u2", "t1", "kakao", at},
			}}, nil
		},
	}

	repo := NewEventStoreRepository(db)

	events, err := repo.FetchFunnelEvents(context.Background(), ports.FunnelQuery{
		Range: domain.DateRange{From: from, To: to},
		Steps: []domain.FunnelStep{domain.StepVisit, domain.StepShare},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, userEntity) {
		t.Fatalf("expected user entity in global query: %s", db.lastQuery)
	}
	if strings.Contains(db.lastQuery, "test_id = $3") {
		t.Fatalf("global query should not filter by test")
	}
	if len(db.lastArgs) != 2 {
		t.Fatalf("expected 2 args, got %d", len(db.lastArgs))
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].UserID != "" || events[0].SessionID != "s1" {
		t.Fatalf("unexpected anonymous event: %+v", events[0])
	}
	if events[1].Step != domain.StepShare || events[1].ShareChannel != "kakao" {
		t.Fatalf("unexpected share event: %+v", events[1])
	}
}

func TestFetchFunnelEvents_TestScoped(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventStoreRepository(db)

	_, err := repo.FetchFunnelEvents(context.Background(), ports.FunnelQuery{
		Range:  domain.DateRange{From: from, To: to},
		Steps:  []domain.FunnelStep{domain.StepTestStart},
		TestID: "t1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(db.lastQuery, "test_id = $3") {
		t.Fatalf("expected test filter: %s", db.lastQuery)
	}
	if strings.Contains(db.lastQuery, userEntity) {
		t.Fatalf("test-scoped query should count sessions")
	}
	if db.lastArgs[2] != "t1" {
		t.Fatalf("expected test id arg, got %v", db.lastArgs[2])
	}
	if got, ok := db.lastArgs[1].(time.Time); !ok || !got.Equal(to) {
		t.Fatalf("expected upper bound %v, got %v", to, db.lastArgs[1])
	}
}

// ------------------------------------------------------------
// WEB SESSIONS
// ------------------------------------------------------------

func TestFetchWebSessions_NormalizesChannel(t *testing.T) {
	at := from.Add(time.Hour)
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM web_sessions") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{rows: [][]any{
				{"w1", "search", "/tests/mbti", "mobile", true, at},
				{"w2", "tiktok", nil, nil, false, at},
			}}, nil
		},
	}

	repo := NewEventStoreRepository(db)

	sessions, err := repo.FetchWebSessions(context.Background(), domain.DateRange{From: from, To: to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Channel != domain.ChannelSearch || !sessions[0].Converted || sessions[0].DeviceType != "mobile" {
		t.Fatalf("unexpected first session: %+v", sessions[0])
	}
	if sessions[1].Channel != domain.ChannelOther || sessions[1].LandingPage != "" {
		t.Fatalf("unexpected second session: %+v", sessions[1])
	}
}

// ------------------------------------------------------------
// COHORTS
// ------------------------------------------------------------

func TestFetchUsersBySignupWeek(t *testing.T) {
	monday := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "date_trunc('week'") {
				t.Fatalf("expected weekly truncation: %s", query)
			}
			return &fakeRowScanner{rows: [][]any{
				{monday, []byte(`{u1,u2}`)},
			}}, nil
		},
	}

	repo := NewEventStoreRepository(db)

	cohorts, err := repo.FetchUsersBySignupWeek(context.Background(), from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cohorts) != 1 || !cohorts[0].WeekStart.Equal(monday) {
		t.Fatalf("unexpected cohorts: %+v", cohorts)
	}
	if len(cohorts[0].UserIDs) != 2 || cohorts[0].UserIDs[1] != "u2" {
		t.Fatalf("unexpected user ids: %v", cohorts[0].UserIDs)
	}
}

func TestFetchActivity(t *testing.T) {
	day := time.Date(2026, 10, 6, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{
				{"u1", day},
				{"u2", day},
			}}, nil
		},
	}

	repo := NewEventStoreRepository(db)

	activity, err := repo.FetchActivity(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activity) != 2 || activity[1].UserID != "u2" || !activity[1].OccurredAt.Equal(day) {
		t.Fatalf("unexpected activity: %+v", activity)
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestEventStoreRepository_DBError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db failure")
		},
	}

	repo := NewEventStoreRepository(db)
	r := domain.DateRange{From: from, To: to}

	if _, err := repo.FetchFunnelEvents(context.Background(), ports.FunnelQuery{Range: r}); err == nil || err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
	if _, err := repo.FetchWebSessions(context.Background(), r); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, err := repo.FetchUsersBySignupWeek(context.Background(), from); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, err := repo.FetchActivity(context.Background(), from, to); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestEventStoreRepository_ScanError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{{"only-one-column"}}}, nil
		},
	}

	repo := NewEventStoreRepository(db)

	if _, err := repo.FetchActivity(context.Background(), from, to); err == nil {
		t.Fatalf("expected scan error, got nil")
	}
}
