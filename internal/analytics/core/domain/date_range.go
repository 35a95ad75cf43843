package domain

import "time"

// DateRange is inclusive on both ends.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Valid() bool {
	return !r.From.After(r.To)
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}
