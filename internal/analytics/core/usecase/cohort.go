package usecase

import (
	"fmt"
	"time"

	"quiz-analytics-service/internal/analytics/core/domain"
)

const MaxCohortWeeks = 52

// StartOfISOWeek returns Monday 00:00 UTC of the ISO week containing t.
func StartOfISOWeek(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
}

// ISOWeekLabel formats t as "2006-W01".
func ISOWeekLabel(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// CohortWindowStart is the first day of the oldest of weeks cohorts ending with
// the week of now.
func CohortWindowStart(weeks int, now time.Time) time.Time {
	return StartOfISOWeek(now).AddDate(0, 0, -7*(weeks-1))
}

// ComputeCohorts builds weeks consecutive weekly cohorts, oldest first, ending
// with the week containing now. Cells for weeks that start after the current
// week are nil.
func ComputeCohorts(signups []domain.SignupCohort, activity []domain.Activity, weeks int, now time.Time) ([]domain.CohortBucket, error) {
	if weeks < 1 || weeks > MaxCohortWeeks {
		return nil, ErrInvalidWeeks
	}

	current := StartOfISOWeek(now)
	first := CohortWindowStart(weeks, now)

	// a user belongs to the earliest week it was seen in
	userWeek := make(map[string]time.Time)
	for _, c := range signups {
		ws := StartOfISOWeek(c.WeekStart)
		for _, u := range c.UserIDs {
			if prev, ok := userWeek[u]; !ok || ws.Before(prev) {
				userWeek[u] = ws
			}
		}
	}

	members := make(map[time.Time][]string)
	for u, ws := range userWeek {
		members[ws] = append(members[ws], u)
	}

	activeWeeks := make(map[string]map[time.Time]bool)
	for _, a := range activity {
		if _, ok := userWeek[a.UserID]; !ok {
			continue
		}
		ws := StartOfISOWeek(a.OccurredAt)
		if activeWeeks[a.UserID] == nil {
			activeWeeks[a.UserID] = make(map[time.Time]bool)
		}
		activeWeeks[a.UserID][ws] = true
	}

	out := make([]domain.CohortBucket, weeks)
	for i := 0; i < weeks; i++ {
		ws := first.AddDate(0, 0, 7*i)
		users := members[ws]

		bucket := domain.CohortBucket{
			Week:      ISOWeekLabel(ws),
			WeekStart: ws,
			Users:     len(users),
			Retention: make([]*float64, weeks),
		}

		for w := 0; w < weeks; w++ {
			cell := ws.AddDate(0, 0, 7*w)
			if cell.After(current) {
				continue
			}
			active := 0
			for _, u := range users {
				if activeWeeks[u][cell] {
					active++
				}
			}
			v := percent(active, len(users))
			bucket.Retention[w] = &v
		}

		out[i] = bucket
	}

	return out, nil
}
