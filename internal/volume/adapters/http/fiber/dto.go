package fiber

type VolumeQuery struct {
	Step     string `query:"step" json:"step" validate:"required,funnel_step"`
	From     int64  `query:"from" json:"from" validate:"required,gte=0"`
	To       int64  `query:"to" json:"to" validate:"required,gtefield=From"`
	TestID   string `query:"test_id" json:"test_id" validate:"omitempty,uuid"`
	GroupBy  string `query:"group_by" json:"group_by" validate:"omitempty,oneof=share_channel time"`
	Interval string `query:"interval" json:"interval" validate:"required_if=GroupBy time,omitempty,oneof=hour day"`
}

type VolumeGroupResponse struct {
	Key            string `json:"key" example:"kakao"`
	TotalEvents    int64  `json:"total_events"`
	UniqueSessions int64  `json:"unique_sessions"`
}

type VolumeResponse struct {
	Step           string                `json:"step" example:"share"`
	From           int64                 `json:"from"`
	To             int64                 `json:"to"`
	TestID         string                `json:"test_id,omitempty"`
	TotalEvents    int64                 `json:"total_events"`
	UniqueSessions int64                 `json:"unique_sessions"`
	GroupBy        string                `json:"group_by,omitempty"`
	Interval       string                `json:"interval,omitempty"`
	Groups         []VolumeGroupResponse `json:"groups,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"Step: failed on 'funnel_step'"`
}
