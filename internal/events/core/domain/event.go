package domain

import "time"

// Event is one row of the append-only funnel event log.
type Event struct {
	Step         string
	SessionID    string
	UserID       string // empty for anonymous visitors
	TestID       string
	ShareChannel string
	EventTime    time.Time
	Metadata     map[string]any
	DedupeKey    string
}
