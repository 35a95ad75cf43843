package fiber

import (
	"time"

	"quiz-analytics-service/internal/analytics/core/domain"
)

func (q RangeQuery) toDomain() domain.DateRange {
	return unixRange(q.From, q.To)
}

func (q FunnelQuery) toDomain() domain.DateRange {
	return unixRange(q.From, q.To)
}

func unixRange(from, to int64) domain.DateRange {
	return domain.DateRange{
		From: time.Unix(from, 0).UTC(),
		To:   time.Unix(to, 0).UTC(),
	}
}

func toFunnelResponse(r *domain.FunnelReport) FunnelResponse {
	resp := FunnelResponse{
		From:   r.Range.From.Unix(),
		To:     r.Range.To.Unix(),
		TestID: r.TestID,
		Steps:  make([]FunnelStepResponse, 0, len(r.Steps)),
		Shares: make([]ShareChannelResponse, 0, len(r.Shares)),
	}
	for _, s := range r.Steps {
		resp.Steps = append(resp.Steps, FunnelStepResponse{
			Step:    string(s.Step),
			Label:   s.Label,
			Count:   s.Count,
			Rate:    s.Rate,
			Dropoff: s.Dropoff,
		})
	}
	for _, s := range r.Shares {
		resp.Shares = append(resp.Shares, ShareChannelResponse{ShareChannel: s.ShareChannel, Count: s.Count})
	}
	return resp
}

func toCohortResponse(weeks int, buckets []domain.CohortBucket) CohortResponse {
	resp := CohortResponse{Weeks: weeks, Cohorts: make([]CohortRowResponse, 0, len(buckets))}
	for _, b := range buckets {
		resp.Cohorts = append(resp.Cohorts, CohortRowResponse{
			Week:      b.Week,
			WeekStart: b.WeekStart.Unix(),
			Users:     b.Users,
			Retention: b.Retention,
		})
	}
	return resp
}

func toShareRows(rows []domain.ChannelShareRow) []ChannelShareRowResponse {
	out := make([]ChannelShareRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ChannelShareRowResponse{
			Channel:           string(r.Channel),
			Label:             r.Label,
			Sessions:          r.Sessions,
			ConvertedSessions: r.ConvertedSessions,
			Share:             r.Share,
		})
	}
	return out
}

func toConversionRows(rows []domain.ChannelConversionRow) []ChannelConversionRowResponse {
	out := make([]ChannelConversionRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ChannelConversionRowResponse{
			Channel:        string(r.Channel),
			Label:          r.Label,
			Sessions:       r.Sessions,
			Completions:    r.Completions,
			ConversionRate: r.ConversionRate,
		})
	}
	return out
}

func toDeviceRows(rows []domain.DeviceRow) []DeviceRowResponse {
	out := make([]DeviceRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DeviceRowResponse(r))
	}
	return out
}
