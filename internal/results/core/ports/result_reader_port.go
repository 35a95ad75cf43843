package ports

import (
	"context"

	"quiz-analytics-service/internal/results/core/domain"
)

type ResultReaderPort interface {
	// FetchCandidateResults returns every result defined for the test, in any order.
	FetchCandidateResults(ctx context.Context, testID string) ([]domain.TestResult, error)

	// FetchSessionFacts derives the facts of a completed session from its answers.
	FetchSessionFacts(ctx context.Context, sessionID string) (domain.SessionFacts, error)
}
