package usecase

import (
	"context"
	"errors"
	"log/slog"

	"quiz-analytics-service/internal/observability"
	"quiz-analytics-service/internal/results/core/domain"
	"quiz-analytics-service/internal/results/core/ports"
)

var (
	ErrInvalidTestID    = errors.New("invalid test id")
	ErrInvalidSessionID = errors.New("invalid session id")
)

type ResolveResultUseCase struct {
	reader  ports.ResultReaderPort
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewResolveResultUseCase(reader ports.ResultReaderPort, logger *slog.Logger, metrics *observability.Metrics) *ResolveResultUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResolveResultUseCase{reader: reader, logger: logger, metrics: metrics}
}

// Execute resolves the result of a session whose facts the caller already holds.
// A nil result with a nil error means no candidate matched.
func (uc *ResolveResultUseCase) Execute(ctx context.Context, testID string, facts domain.SessionFacts) (*domain.TestResult, error) {
	if testID == "" {
		return nil, ErrInvalidTestID
	}

	candidates, err := uc.reader.FetchCandidateResults(ctx, testID)
	if err != nil {
		return nil, err
	}

	res := Resolve(candidates, facts)
	uc.metrics.ObserveResolution(res != nil)

	if res == nil {
		uc.logger.InfoContext(ctx, "no result matched",
			"test_id", testID,
			"candidates", len(candidates))
		return nil, nil
	}

	uc.logger.DebugContext(ctx, "result resolved",
		"test_id", testID,
		"result_id", res.ID,
		"order", res.Order)

	return res, nil
}

// ResolveSession loads the session's facts from storage and resolves them.
func (uc *ResolveResultUseCase) ResolveSession(ctx context.Context, testID, sessionID string) (*domain.TestResult, error) {
	if testID == "" {
		return nil, ErrInvalidTestID
	}
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	facts, err := uc.reader.FetchSessionFacts(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return uc.Execute(ctx, testID, facts)
}
