package domain

import "encoding/json"

type ConditionType string

const (
	ConditionScoreRange  ConditionType = "score_range"
	ConditionChoiceRatio ConditionType = "choice_ratio"
	ConditionQuizScore   ConditionType = "quiz_score"
	ConditionCustom      ConditionType = "custom"
)

// TestResult is one candidate outcome of a test. Order is unique within a test
// and decides resolution priority (ascending).
type TestResult struct {
	ID             string
	TestID         string
	Title          string
	Order          int
	ConditionType  ConditionType
	MatchCondition json.RawMessage
}
