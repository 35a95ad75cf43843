package usecase

import "errors"

var (
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrInvalidFunnelStep = errors.New("invalid funnel step")
	ErrInvalidWeeks      = errors.New("invalid number of cohort weeks")
)

// percent returns num/den*100, or 0 when den is not positive.
func percent(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) * 100 / float64(den)
}
