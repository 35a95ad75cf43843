package usecase

import (
	"sort"

	"quiz-analytics-service/internal/results/core/domain"
)

// Resolve returns the lowest-order candidate whose condition matches facts,
// or nil when none does. The input slice is left untouched.
func Resolve(candidates []domain.TestResult, facts domain.SessionFacts) *domain.TestResult {
	ordered := make([]domain.TestResult, len(candidates))
	copy(ordered, candidates)

	// Order is unique per test; the id tie-break only guards against bad data.
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].ID < ordered[j].ID
	})

	for i := range ordered {
		if Evaluate(facts, ordered[i].ConditionType, ordered[i].MatchCondition) {
			res := ordered[i]
			return &res
		}
	}

	return nil
}
