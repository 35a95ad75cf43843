package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-analytics-service/internal/events/core/domain"
)

// Fake repo
type fakeRepo struct {
	InsertCalls []*domain.Event
	Results     []bool
	Err         error
}

func (f *fakeRepo) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	f.InsertCalls = append(f.InsertCalls, e)

	if len(f.Results) == 0 {
		// default: created
		return true, nil
	}

	res := f.Results[0]
	f.Results = f.Results[1:]
	return res, nil
}

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeRepo) *StoreEventUseCase {
	uc := NewStoreEventUseCase(repo, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func validInput() StoreEventInput {
	return StoreEventInput{
		Step:      "test_start",
		SessionID: "s1",
		UserID:    "u1",
		TestID:    "3f1b6f0e-2a55-4c39-9a4e-4d1f4a1f9d10",
		Timestamp: fixedNow.Add(-time.Minute).Unix(),
	}
}

// ------------------------------------------------------------
// SINGLE EVENT
// ------------------------------------------------------------

func TestExecute_Created(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	created, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}

	e := repo.InsertCalls[0]
	if !e.EventTime.Equal(fixedNow.Add(-time.Minute)) {
		t.Errorf("unexpected event time: %v", e.EventTime)
	}
	if e.Metadata == nil {
		t.Errorf("expected metadata to default to an empty map")
	}
	if e.DedupeKey == "" {
		t.Errorf("expected dedupe key")
	}
}

func TestExecute_DedupeKeyIsStable(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	in := validInput()
	other := validInput()
	other.SessionID = "s2"

	for _, ev := range []StoreEventInput{in, in, other} {
		if _, err := uc.Execute(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if repo.InsertCalls[0].DedupeKey != repo.InsertCalls[1].DedupeKey {
		t.Errorf("expected identical events to share a dedupe key")
	}
	if repo.InsertCalls[0].DedupeKey == repo.InsertCalls[2].DedupeKey {
		t.Errorf("expected different sessions to get different keys")
	}
}

func TestExecute_Validation(t *testing.T) {
	cases := map[string]func(in *StoreEventInput){
		"unknown step":           func(in *StoreEventInput) { in.Step = "checkout" },
		"missing session":        func(in *StoreEventInput) { in.SessionID = "" },
		"missing timestamp":      func(in *StoreEventInput) { in.Timestamp = 0 },
		"test step without test": func(in *StoreEventInput) { in.TestID = "" },
		"share channel on visit": func(in *StoreEventInput) { in.Step = "visit"; in.ShareChannel = "kakao" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newTestUseCase(repo)

			in := validInput()
			mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !errors.Is(err, ErrInvalidEvent) {
				t.Fatalf("expected ErrInvalidEvent, got %v", err)
			}
			if len(repo.InsertCalls) != 0 {
				t.Fatalf("expected no insert on invalid input")
			}
		})
	}
}

func TestExecute_FutureTime(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	in := validInput()
	in.Timestamp = fixedNow.Add(30 * time.Second).Unix()
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("expected small clock skew to be accepted, got %v", err)
	}

	in.Timestamp = fixedNow.Add(time.Hour).Unix()
	if _, err := uc.Execute(context.Background(), in); !errors.Is(err, ErrFutureTime) {
		t.Fatalf("expected ErrFutureTime, got %v", err)
	}
}

func TestExecute_RepoError(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{Err: errors.New("db error")})

	created, err := uc.Execute(context.Background(), validInput())
	if err == nil || err.Error() != "db error" {
		t.Fatalf("expected db error, got %v", err)
	}
	if created {
		t.Fatalf("expected created=false on error")
	}
}

// ------------------------------------------------------------
// BULK
// ------------------------------------------------------------

func TestBulkCreateEvents_MixedCreatedAndDuplicate(t *testing.T) {
	// created, duplicate, created
	repo := &fakeRepo{
		Results: []bool{true, false, true},
	}
	uc := newTestUseCase(repo)

	visit := validInput()
	visit.Step = "visit"
	visit.TestID = ""

	share := validInput()
	share.Step = "share"
	share.ShareChannel = "kakao"

	res, err := uc.BulkCreateEvents(context.Background(), BulkCreateEventsInput{
		Events: []StoreEventInput{visit, visit, share},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Created != 2 {
		t.Errorf("expected Created=2, got %d", res.Created)
	}
	if res.Duplicates != 1 {
		t.Errorf("expected Duplicates=1, got %d", res.Duplicates)
	}
	if len(repo.InsertCalls) != 3 {
		t.Errorf("expected 3 InsertEvent calls, got %d", len(repo.InsertCalls))
	}
}

func TestBulkCreateEvents_ValidationErrorInOneEvent(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	bad := validInput()
	// Error : empty Step
	bad.Step = ""

	_, err := uc.BulkCreateEvents(context.Background(), BulkCreateEventsInput{
		Events: []StoreEventInput{validInput(), bad, validInput()},
	})
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}

	if len(repo.InsertCalls) != 0 {
		t.Errorf("expected 0 InsertEvent calls, got %d", len(repo.InsertCalls))
	}
}

func TestBulkCreateEvents_StopsOnRepoError(t *testing.T) {
	repo := &fakeRepo{Err: errors.New("db error")}
	uc := newTestUseCase(repo)

	res, err := uc.BulkCreateEvents(context.Background(), BulkCreateEventsInput{
		Events: []StoreEventInput{validInput(), validInput()},
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if res.Created != 0 || res.Duplicates != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}
