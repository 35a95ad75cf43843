package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"quiz-analytics-service/internal/results/core/domain"
	"quiz-analytics-service/internal/results/core/usecase"
)

// fakeResultReader implements ResultReaderPort.
type fakeResultReader struct {
	CandidatesFn func(ctx context.Context, testID string) ([]domain.TestResult, error)
	FactsFn      func(ctx context.Context, sessionID string) (domain.SessionFacts, error)
	called       bool
}

func (f *fakeResultReader) FetchCandidateResults(ctx context.Context, testID string) ([]domain.TestResult, error) {
	f.called = true
	if f.CandidatesFn != nil {
		return f.CandidatesFn(ctx, testID)
	}
	return nil, nil
}

func (f *fakeResultReader) FetchSessionFacts(ctx context.Context, sessionID string) (domain.SessionFacts, error) {
	f.called = true
	if f.FactsFn != nil {
		return f.FactsFn(ctx, sessionID)
	}
	return domain.SessionFacts{}, nil
}

func gradeCandidates(ctx context.Context, testID string) ([]domain.TestResult, error) {
	return []domain.TestResult{
		{ID: "r2", TestID: testID, Order: 2, ConditionType: domain.ConditionQuizScore, MatchCondition: json.RawMessage(`{"min":6,"max":10}`)},
		{ID: "r1", TestID: testID, Order: 1, ConditionType: domain.ConditionQuizScore, MatchCondition: json.RawMessage(`{"min":0,"max":5}`)},
	}, nil
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestResolveResult_Success(t *testing.T) {
	reader := &fakeResultReader{CandidatesFn: gradeCandidates}
	uc := usecase.NewResolveResultUseCase(reader, nil, nil)

	res, err := uc.Execute(context.Background(), "test-1", domain.SessionFacts{CorrectCount: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || res.ID != "r2" {
		t.Fatalf("expected r2, got %+v", res)
	}
}

func TestResolveResult_NoMatch(t *testing.T) {
	reader := &fakeResultReader{CandidatesFn: gradeCandidates}
	uc := usecase.NewResolveResultUseCase(reader, nil, nil)

	res, err := uc.Execute(context.Background(), "test-1", domain.SessionFacts{CorrectCount: 42})
	if err != nil {
		t.Fatalf("no-match must not be an error, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result, got %+v", res)
	}
}

func TestResolveResult_ResolveSession(t *testing.T) {
	var gotSession string
	reader := &fakeResultReader{
		CandidatesFn: gradeCandidates,
		FactsFn: func(ctx context.Context, sessionID string) (domain.SessionFacts, error) {
			gotSession = sessionID
			return domain.SessionFacts{CorrectCount: 2}, nil
		},
	}
	uc := usecase.NewResolveResultUseCase(reader, nil, nil)

	res, err := uc.ResolveSession(context.Background(), "test-1", "sess-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSession != "sess-9" {
		t.Fatalf("expected session sess-9, got %s", gotSession)
	}
	if res == nil || res.ID != "r1" {
		t.Fatalf("expected r1, got %+v", res)
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestResolveResult_InvalidIDs(t *testing.T) {
	reader := &fakeResultReader{}
	uc := usecase.NewResolveResultUseCase(reader, nil, nil)

	if _, err := uc.Execute(context.Background(), "", domain.SessionFacts{}); !errors.Is(err, usecase.ErrInvalidTestID) {
		t.Fatalf("expected ErrInvalidTestID, got %v", err)
	}
	if _, err := uc.ResolveSession(context.Background(), "t", ""); !errors.Is(err, usecase.ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
	if reader.called {
		t.Fatalf("repository should not be called on invalid input")
	}
}

// ------------------------------------------------------------
// REPOSITORY ERROR PROPAGATION
// ------------------------------------------------------------

func TestResolveResult_RepositoryError(t *testing.T) {
	dbErr := errors.New("db failure")
	reader := &fakeResultReader{
		CandidatesFn: func(ctx context.Context, testID string) ([]domain.TestResult, error) {
			return nil, dbErr
		},
	}
	uc := usecase.NewResolveResultUseCase(reader, nil, nil)

	res, err := uc.Execute(context.Background(), "test-1", domain.SessionFacts{})
	if err != dbErr {
		t.Fatalf("expected error to be propagated unchanged, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result on error")
	}
}
