package domain

import "time"

// SignupCohort lists the users first seen in the ISO week starting at WeekStart.
type SignupCohort struct {
	WeekStart time.Time
	UserIDs   []string
}

// Activity is one qualifying activity of a user.
type Activity struct {
	UserID     string
	OccurredAt time.Time
}

// CohortBucket is one row of the retention grid. A nil Retention entry means
// the week has not elapsed yet, which is different from 0%.
type CohortBucket struct {
	Week      string
	WeekStart time.Time
	Users     int
	Retention []*float64
}
