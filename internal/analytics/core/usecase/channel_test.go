package usecase

import (
	"errors"
	"testing"
	"time"

	"quiz-analytics-service/internal/analytics/core/domain"
)

func sessionsFixture() []domain.WebSession {
	at := day0.Add(2 * time.Hour)
	return []domain.WebSession{
		{ID: "1", Channel: domain.ChannelSearch, DeviceType: "mobile", Converted: true, StartedAt: at},
		{ID: "2", Channel: domain.ChannelSearch, DeviceType: "mobile", StartedAt: at},
		{ID: "3", Channel: domain.ChannelSearch, DeviceType: "desktop", StartedAt: at},
		{ID: "4", Channel: domain.ChannelSearch, DeviceType: "mobile", Converted: true, StartedAt: at},
		{ID: "5", Channel: domain.ChannelSocial, DeviceType: "mobile", Converted: true, StartedAt: at},
		{ID: "6", Channel: "tiktok", DeviceType: "", StartedAt: at},
		// outside the range
		{ID: "7", Channel: domain.ChannelDirect, Converted: true, StartedAt: octRange.To.Add(time.Minute)},
	}
}

func TestComputeChannelConversion(t *testing.T) {
	rows, err := ComputeChannelConversion(sessionsFixture(), octRange)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(domain.Channels) {
		t.Fatalf("expected every channel, got %d rows", len(rows))
	}

	byChannel := map[domain.Channel]domain.ChannelConversionRow{}
	for _, r := range rows {
		byChannel[r.Channel] = r
	}

	search := byChannel[domain.ChannelSearch]
	if search.Sessions != 4 || search.Completions != 2 || search.ConversionRate != 50 {
		t.Fatalf("unexpected search row: %+v", search)
	}
	if search.Label != "검색" {
		t.Fatalf("expected search label, got %s", search.Label)
	}

	direct := byChannel[domain.ChannelDirect]
	if direct.Sessions != 0 || direct.ConversionRate != 0 {
		t.Fatalf("expected zero-session channel to report rate 0, got %+v", direct)
	}
	if direct.Label != "직접 방문" {
		t.Fatalf("expected direct label, got %s", direct.Label)
	}

	other := byChannel[domain.ChannelOther]
	if other.Sessions != 1 {
		t.Fatalf("expected unknown channel folded into other, got %+v", other)
	}
}

func TestComputeChannelShare(t *testing.T) {
	rows, err := ComputeChannelShare(sessionsFixture(), octRange)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows[0].Channel != domain.ChannelDirect {
		t.Fatalf("expected canonical order, got %s first", rows[0].Channel)
	}

	var total float64
	for _, r := range rows {
		total += r.Share
		if r.Channel == domain.ChannelSocial && (r.Sessions != 1 || r.ConvertedSessions != 1) {
			t.Fatalf("unexpected social row: %+v", r)
		}
	}
	if total < 99.999 || total > 100.001 {
		t.Fatalf("expected shares to sum to 100, got %v", total)
	}

	empty, err := ComputeChannelShare(nil, octRange)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range empty {
		if r.Share != 0 {
			t.Fatalf("expected share 0 without sessions, got %+v", r)
		}
	}
}

func TestComputeDeviceBreakdown(t *testing.T) {
	rows, err := ComputeDeviceBreakdown(sessionsFixture(), octRange)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.DeviceRow{
		{DeviceType: "mobile", Sessions: 4, Completions: 3, ConversionRate: 75},
		{DeviceType: "desktop", Sessions: 1, Completions: 0, ConversionRate: 0},
		{DeviceType: "unknown", Sessions: 1, Completions: 0, ConversionRate: 0},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %v, got %v", want, rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, rows)
		}
	}
}

func TestChannels_InvalidRange(t *testing.T) {
	bad := domain.DateRange{From: octRange.To, To: octRange.From}

	if _, err := ComputeChannelShare(nil, bad); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if _, err := ComputeChannelConversion(nil, bad); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
