package usecase

import (
	"sort"

	"quiz-analytics-service/internal/analytics/core/domain"
)

type channelTally struct {
	sessions  int
	converted int
}

func tallyChannels(sessions []domain.WebSession, r domain.DateRange) (map[domain.Channel]*channelTally, int) {
	tally := make(map[domain.Channel]*channelTally, len(domain.Channels))
	for _, c := range domain.Channels {
		tally[c] = &channelTally{}
	}

	total := 0
	for _, s := range sessions {
		if !r.Contains(s.StartedAt) {
			continue
		}
		t := tally[domain.NormalizeChannel(string(s.Channel))]
		t.sessions++
		if s.Converted {
			t.converted++
		}
		total++
	}

	return tally, total
}

// ComputeChannelShare reports every channel in canonical order, including
// channels without sessions.
func ComputeChannelShare(sessions []domain.WebSession, r domain.DateRange) ([]domain.ChannelShareRow, error) {
	if !r.Valid() {
		return nil, ErrInvalidDateRange
	}

	tally, total := tallyChannels(sessions, r)

	out := make([]domain.ChannelShareRow, 0, len(domain.Channels))
	for _, c := range domain.Channels {
		t := tally[c]
		out = append(out, domain.ChannelShareRow{
			Channel:           c,
			Label:             c.Label(),
			Sessions:          t.sessions,
			ConvertedSessions: t.converted,
			Share:             percent(t.sessions, total),
		})
	}

	return out, nil
}

// ComputeChannelConversion treats a converted session as a completion.
func ComputeChannelConversion(sessions []domain.WebSession, r domain.DateRange) ([]domain.ChannelConversionRow, error) {
	if !r.Valid() {
		return nil, ErrInvalidDateRange
	}

	tally, _ := tallyChannels(sessions, r)

	out := make([]domain.ChannelConversionRow, 0, len(domain.Channels))
	for _, c := range domain.Channels {
		t := tally[c]
		out = append(out, domain.ChannelConversionRow{
			Channel:        c,
			Label:          c.Label(),
			Sessions:       t.sessions,
			Completions:    t.converted,
			ConversionRate: percent(t.converted, t.sessions),
		})
	}

	return out, nil
}

// ComputeDeviceBreakdown groups in-range sessions by device type, most
// sessions first.
func ComputeDeviceBreakdown(sessions []domain.WebSession, r domain.DateRange) ([]domain.DeviceRow, error) {
	if !r.Valid() {
		return nil, ErrInvalidDateRange
	}

	tally := make(map[string]*channelTally)
	for _, s := range sessions {
		if !r.Contains(s.StartedAt) {
			continue
		}
		device := s.DeviceType
		if device == "" {
			device = "unknown"
		}
		t, ok := tally[device]
		if !ok {
			t = &channelTally{}
			tally[device] = t
		}
		t.sessions++
		if s.Converted {
			t.converted++
		}
	}

	out := make([]domain.DeviceRow, 0, len(tally))
	for device, t := range tally {
		out = append(out, domain.DeviceRow{
			DeviceType:     device,
			Sessions:       t.sessions,
			Completions:    t.converted,
			ConversionRate: percent(t.converted, t.sessions),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sessions != out[j].Sessions {
			return out[i].Sessions > out[j].Sessions
		}
		return out[i].DeviceType < out[j].DeviceType
	})

	return out, nil
}
