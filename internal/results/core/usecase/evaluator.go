package usecase

import (
	"encoding/json"

	"quiz-analytics-service/internal/results/core/domain"
)

// Evaluate reports whether facts satisfy the stored match condition.
// A condition that cannot be parsed never matches.
func Evaluate(facts domain.SessionFacts, t domain.ConditionType, raw json.RawMessage) bool {
	cond, err := domain.ParseCondition(t, raw)
	if err != nil {
		return false
	}
	return Matches(facts, cond)
}

// ValidateCondition returns the parse error Evaluate would swallow, for use at
// authoring time.
func ValidateCondition(t domain.ConditionType, raw json.RawMessage) error {
	_, err := domain.ParseCondition(t, raw)
	return err
}

// Matches evaluates an already parsed condition. Bounds are inclusive.
func Matches(facts domain.SessionFacts, cond domain.Condition) bool {
	switch c := cond.(type) {
	case domain.ScoreRange:
		if facts.TotalScore == nil {
			return false
		}
		return inRange(*facts.TotalScore, c.Min, c.Max)

	case domain.ChoiceRatio:
		if facts.AnsweredCount <= 0 {
			return false
		}
		ratio := float64(facts.ChoiceCounts[c.TargetCode]) / float64(facts.AnsweredCount)
		return ratio >= c.MinRatio

	case domain.QuizScore:
		switch c.Source {
		case domain.SourceTotalScore:
			if facts.TotalScore == nil {
				return false
			}
			return inRange(*facts.TotalScore, c.Min, c.Max)
		case domain.SourceCorrectCount:
			return inRange(float64(facts.CorrectCount), c.Min, c.Max)
		default:
			return false
		}

	case domain.Custom:
		return evalNode(facts, c.Root)

	default:
		return false
	}
}

func evalNode(facts domain.SessionFacts, n domain.Node) bool {
	switch node := n.(type) {
	case domain.CountNode:
		count := facts.ChoiceCounts[node.Code]
		if node.MinCount != nil && count < *node.MinCount {
			return false
		}
		if node.MaxCount != nil && count > *node.MaxCount {
			return false
		}
		return true

	case domain.AllNode:
		for _, child := range node.Children {
			if !evalNode(facts, child) {
				return false
			}
		}
		return true

	case domain.AnyNode:
		for _, child := range node.Children {
			if evalNode(facts, child) {
				return true
			}
		}
		return false

	case domain.ScoreNode:
		if facts.TotalScore == nil {
			return false
		}
		score := *facts.TotalScore
		if node.Min != nil && score < *node.Min {
			return false
		}
		if node.Max != nil && score > *node.Max {
			return false
		}
		return true

	case domain.SelectedNode:
		for _, code := range node.Codes {
			if !facts.HasSelected(code) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func inRange(v, min, max float64) bool {
	return v >= min && v <= max
}
