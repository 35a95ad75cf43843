package domain

import "time"

type FunnelStep string

const (
	StepVisit        FunnelStep = "visit"
	StepSignup       FunnelStep = "signup"
	StepTestStart    FunnelStep = "test_start"
	StepTestComplete FunnelStep = "test_complete"
	StepRevisit      FunnelStep = "revisit"
	StepShare        FunnelStep = "share"
)

// CanonicalSteps is the order of the global funnel.
var CanonicalSteps = []FunnelStep{
	StepVisit,
	StepSignup,
	StepTestStart,
	StepTestComplete,
	StepRevisit,
	StepShare,
}

// TestScopedSteps is the funnel reported for a single test.
var TestScopedSteps = []FunnelStep{
	StepTestStart,
	StepTestComplete,
	StepShare,
}

var stepLabels = map[FunnelStep]string{
	StepVisit:        "방문",
	StepSignup:       "회원가입",
	StepTestStart:    "테스트 시작",
	StepTestComplete: "테스트 완료",
	StepRevisit:      "재방문",
	StepShare:        "공유",
}

// StepIndex returns the canonical position of s, or -1 for unknown steps.
func StepIndex(s FunnelStep) int {
	for i, c := range CanonicalSteps {
		if c == s {
			return i
		}
	}
	return -1
}

func (s FunnelStep) Valid() bool { return StepIndex(s) >= 0 }

func (s FunnelStep) Label() string {
	if l, ok := stepLabels[s]; ok {
		return l
	}
	return string(s)
}

// FunnelEvent is one occurrence of a funnel step. Append-only.
type FunnelEvent struct {
	Step         FunnelStep
	SessionID    string
	UserID       string
	TestID       string
	ShareChannel string
	OccurredAt   time.Time
}

type FunnelFilter struct {
	TestID string
}

func (f FunnelFilter) TestScoped() bool { return f.TestID != "" }

// FunnelStepResult is one row of a computed funnel. Rate and Dropoff are percentages.
type FunnelStepResult struct {
	Step    FunnelStep
	Label   string
	Count   int
	Rate    float64
	Dropoff float64
}

type ShareChannelCount struct {
	ShareChannel string
	Count        int
}

type FunnelReport struct {
	Range  DateRange
	TestID string
	Steps  []FunnelStepResult
	Shares []ShareChannelCount
}
