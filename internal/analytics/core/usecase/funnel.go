package usecase

import (
	"fmt"
	"sort"

	"quiz-analytics-service/internal/analytics/core/domain"
)

// NormalizeSteps validates steps and returns them deduplicated in canonical
// order. An empty list selects the default funnel for the filter.
func NormalizeSteps(steps []domain.FunnelStep, f domain.FunnelFilter) ([]domain.FunnelStep, error) {
	if len(steps) == 0 {
		if f.TestScoped() {
			return append([]domain.FunnelStep(nil), domain.TestScopedSteps...), nil
		}
		return append([]domain.FunnelStep(nil), domain.CanonicalSteps...), nil
	}

	seen := make(map[domain.FunnelStep]bool, len(steps))
	out := make([]domain.FunnelStep, 0, len(steps))
	for _, s := range steps {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFunnelStep, s)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return domain.StepIndex(out[i]) < domain.StepIndex(out[j])
	})

	return out, nil
}

// funnelEntity is the session for test-scoped funnels and the user otherwise,
// with anonymous rows falling back to their session.
func funnelEntity(e domain.FunnelEvent, f domain.FunnelFilter) string {
	if f.TestScoped() {
		return e.SessionID
	}
	if e.UserID != "" {
		return e.UserID
	}
	if e.SessionID != "" {
		return "session:" + e.SessionID
	}
	return ""
}

// earliestByStep keeps the first event of every entity per step.
func earliestByStep(events []domain.FunnelEvent, f domain.FunnelFilter) map[domain.FunnelStep]map[string]domain.FunnelEvent {
	first := make(map[domain.FunnelStep]map[string]domain.FunnelEvent)

	for _, e := range events {
		if f.TestScoped() && e.TestID != f.TestID {
			continue
		}
		entity := funnelEntity(e, f)
		if entity == "" {
			continue
		}

		byEntity, ok := first[e.Step]
		if !ok {
			byEntity = make(map[string]domain.FunnelEvent)
			first[e.Step] = byEntity
		}
		if prev, ok := byEntity[entity]; !ok || e.OccurredAt.Before(prev.OccurredAt) {
			byEntity[entity] = e
		}
	}

	return first
}

// ComputeFunnel counts, per step, the entities whose earliest event of that
// step falls in r. Steps are not required to be monotonic: an entity is
// counted at a later step even without an earlier-step event.
func ComputeFunnel(events []domain.FunnelEvent, steps []domain.FunnelStep, r domain.DateRange, f domain.FunnelFilter) ([]domain.FunnelStepResult, error) {
	if !r.Valid() {
		return nil, ErrInvalidDateRange
	}

	steps, err := NormalizeSteps(steps, f)
	if err != nil {
		return nil, err
	}

	first := earliestByStep(events, f)

	counts := make([]int, len(steps))
	for i, s := range steps {
		for _, e := range first[s] {
			if r.Contains(e.OccurredAt) {
				counts[i]++
			}
		}
	}

	out := make([]domain.FunnelStepResult, len(steps))
	for i, s := range steps {
		row := domain.FunnelStepResult{
			Step:  s,
			Label: s.Label(),
			Count: counts[i],
			Rate:  percent(counts[i], counts[0]),
		}
		// dropoff is not clamped: a negative value means more entities
		// reached this step than the previous one
		if i > 0 && counts[i-1] > 0 {
			row.Dropoff = 100 - percent(counts[i], counts[i-1])
		}
		out[i] = row
	}

	return out, nil
}

// ShareBreakdown attributes each entity's first in-range share to its channel.
func ShareBreakdown(events []domain.FunnelEvent, r domain.DateRange, f domain.FunnelFilter) []domain.ShareChannelCount {
	first := earliestByStep(events, f)

	counts := make(map[string]int)
	for _, e := range first[domain.StepShare] {
		if !r.Contains(e.OccurredAt) {
			continue
		}
		ch := e.ShareChannel
		if ch == "" {
			ch = "unknown"
		}
		counts[ch]++
	}

	out := make([]domain.ShareChannelCount, 0, len(counts))
	for ch, n := range counts {
		out = append(out, domain.ShareChannelCount{ShareChannel: ch, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ShareChannel < out[j].ShareChannel
	})

	return out
}

