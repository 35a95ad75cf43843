package fiber

// CreateEventRequest represents event creation payload
// @Description Funnel event ingestion DTO
type CreateEventRequest struct {
	Step         string         `json:"step" validate:"required,funnel_step" example:"test_start"`
	SessionID    string         `json:"session_id" validate:"required,max=128"`
	UserID       string         `json:"user_id" validate:"omitempty,max=128"`
	TestID       string         `json:"test_id" validate:"omitempty,uuid"`
	ShareChannel string         `json:"share_channel" validate:"omitempty,max=64" example:"kakao"`
	Timestamp    int64          `json:"timestamp" validate:"required,gt=0"`
	Metadata     map[string]any `json:"metadata"`
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events" validate:"required,min=1,max=1000,dive"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
