package fiber

// ResolveRequest carries either raw answers or pre-computed session facts.
// When answers are present the facts fields are ignored.
type ResolveRequest struct {
	Answers       []AnswerRequest `json:"answers" validate:"omitempty,max=500,dive"`
	TotalScore    *float64        `json:"total_score"`
	ChoiceCounts  map[string]int  `json:"choice_counts" validate:"omitempty,dive,keys,required,max=64,endkeys,gte=0"`
	SelectedCodes []string        `json:"selected_codes" validate:"omitempty,dive,required,max=64"`
	AnsweredCount int             `json:"answered_count" validate:"gte=0"`
	CorrectCount  int             `json:"correct_count" validate:"gte=0,ltefield=AnsweredCount"`
}

type AnswerRequest struct {
	QuestionID string   `json:"question_id" validate:"required"`
	ChoiceCode string   `json:"choice_code" validate:"omitempty,max=64"`
	Score      *float64 `json:"score"`
	Correct    *bool    `json:"correct"`
}

type ResolveResponse struct {
	ResultID *string `json:"result_id"`
	Title    string  `json:"title,omitempty"`
	Order    int     `json:"order,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_test_id"`
	Message string `json:"message" example:"testId must be a UUID"`
}
