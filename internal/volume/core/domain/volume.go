package domain

import "time"

type GroupBy string

const (
	GroupNone         GroupBy = ""
	GroupShareChannel GroupBy = "share_channel"
	GroupTime         GroupBy = "time"
)

type Interval string

const (
	IntervalHour Interval = "hour"
	IntervalDay  Interval = "day"
)

// StepVolume is the raw event volume of one funnel step. Unlike the funnel it
// counts every event, not only the first per entity.
type StepVolume struct {
	Step           string
	From           time.Time
	To             time.Time
	TestID         string
	TotalEvents    int64
	UniqueSessions int64

	GroupBy  GroupBy
	Interval Interval
	Groups   []VolumeGroup
}

// VolumeGroup is one share channel or one time bucket (RFC 3339, UTC).
type VolumeGroup struct {
	Key            string
	TotalEvents    int64
	UniqueSessions int64
}
