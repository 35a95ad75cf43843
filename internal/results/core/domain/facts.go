package domain

// SessionFacts is the summary of a completed session used for result matching.
type SessionFacts struct {
	TotalScore    *float64 // nil when the test does not score answers
	ChoiceCounts  map[string]int
	SelectedCodes map[string]struct{}
	AnsweredCount int
	CorrectCount  int
}

// Answer is a single recorded answer of a session.
type Answer struct {
	QuestionID string
	ChoiceCode string
	Score      *float64
	Correct    *bool
}

// DeriveFacts folds a session's answers into SessionFacts.
func DeriveFacts(answers []Answer) SessionFacts {
	facts := SessionFacts{
		ChoiceCounts:  map[string]int{},
		SelectedCodes: map[string]struct{}{},
	}

	var total float64
	scored := false

	for _, a := range answers {
		facts.AnsweredCount++

		if a.ChoiceCode != "" {
			facts.ChoiceCounts[a.ChoiceCode]++
			facts.SelectedCodes[a.ChoiceCode] = struct{}{}
		}
		if a.Score != nil {
			total += *a.Score
			scored = true
		}
		if a.Correct != nil && *a.Correct {
			facts.CorrectCount++
		}
	}

	if scored {
		facts.TotalScore = &total
	}

	return facts
}

func (f SessionFacts) HasSelected(code string) bool {
	_, ok := f.SelectedCodes[code]
	return ok
}
