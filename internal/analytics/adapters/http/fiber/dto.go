package fiber

// RangeQuery is the unix-seconds date range shared by the analytics endpoints.
// Both bounds are inclusive.
type RangeQuery struct {
	From int64 `query:"from" json:"from" validate:"required,gte=0"`
	To   int64 `query:"to" json:"to" validate:"required,gtefield=From"`
}

type FunnelQuery struct {
	From   int64  `query:"from" json:"from" validate:"required,gte=0"`
	To     int64  `query:"to" json:"to" validate:"required,gtefield=From"`
	TestID string `query:"test_id" json:"test_id" validate:"omitempty,uuid"`
	Steps  string `query:"steps" json:"steps" validate:"omitempty,max=256"`
}

type CohortQuery struct {
	Weeks int `query:"weeks" json:"weeks" validate:"omitempty,min=1,max=52"`
}

type FunnelStepResponse struct {
	Step    string  `json:"step" example:"visit"`
	Label   string  `json:"label" example:"방문"`
	Count   int     `json:"count"`
	Rate    float64 `json:"rate"`
	Dropoff float64 `json:"dropoff"`
}

type ShareChannelResponse struct {
	ShareChannel string `json:"share_channel" example:"kakao"`
	Count        int    `json:"count"`
}

type FunnelResponse struct {
	From   int64                  `json:"from"`
	To     int64                  `json:"to"`
	TestID string                 `json:"test_id,omitempty"`
	Steps  []FunnelStepResponse   `json:"steps"`
	Shares []ShareChannelResponse `json:"shares"`
}

// CohortRowResponse holds one signup week. A null retention cell means the
// week has not elapsed yet.
type CohortRowResponse struct {
	Week      string     `json:"week" example:"2026-W41"`
	WeekStart int64      `json:"week_start"`
	Users     int        `json:"users"`
	Retention []*float64 `json:"retention"`
}

type CohortResponse struct {
	Weeks   int                 `json:"weeks"`
	Cohorts []CohortRowResponse `json:"cohorts"`
}

type ChannelShareRowResponse struct {
	Channel           string  `json:"channel" example:"search"`
	Label             string  `json:"label" example:"검색"`
	Sessions          int     `json:"sessions"`
	ConvertedSessions int     `json:"converted_sessions"`
	Share             float64 `json:"share"`
}

type ChannelShareResponse struct {
	From     int64                     `json:"from"`
	To       int64                     `json:"to"`
	Channels []ChannelShareRowResponse `json:"channels"`
}

type ChannelConversionRowResponse struct {
	Channel        string  `json:"channel" example:"search"`
	Label          string  `json:"label" example:"검색"`
	Sessions       int     `json:"sessions"`
	Completions    int     `json:"completions"`
	ConversionRate float64 `json:"conversion_rate"`
}

type ChannelConversionResponse struct {
	From     int64                          `json:"from"`
	To       int64                          `json:"to"`
	Channels []ChannelConversionRowResponse `json:"channels"`
}

type DeviceRowResponse struct {
	DeviceType     string  `json:"device_type" example:"mobile"`
	Sessions       int     `json:"sessions"`
	Completions    int     `json:"completions"`
	ConversionRate float64 `json:"conversion_rate"`
}

type DeviceResponse struct {
	From    int64               `json:"from"`
	To      int64               `json:"to"`
	Devices []DeviceRowResponse `json:"devices"`
}

type OverviewResponse struct {
	Funnel            FunnelResponse                 `json:"funnel"`
	ChannelShare      []ChannelShareRowResponse      `json:"channel_share"`
	ChannelConversion []ChannelConversionRowResponse `json:"channel_conversion"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid date range"`
}
