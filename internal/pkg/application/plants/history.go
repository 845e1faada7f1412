package plants

import (
	"fmt"
	"time"
)

type HistoryPeriod string

const (
	PastHour    HistoryPeriod = "past_hour"
	Past12Hours HistoryPeriod = "past_12_hours"
	PastDay     HistoryPeriod = "past_day"
	Past15Days  HistoryPeriod = "past_15_days"
	Past30Days  HistoryPeriod = "past_30_days"
	Past6Months HistoryPeriod = "past_6_months"
	PastYear    HistoryPeriod = "past_year"
	AllTime     HistoryPeriod = "all_time"
)

var ErrInvalidHistoryPeriod = fmt.Errorf("invalid history period")

// ParseHistoryPeriod accepts the period names above. An empty string means AllTime.
func ParseHistoryPeriod(s string) (HistoryPeriod, error) {
	if s == "" {
		return AllTime, nil
	}

	p := HistoryPeriod(s)
	switch p {
	case PastHour, Past12Hours, PastDay, Past15Days, Past30Days, Past6Months, PastYear, AllTime:
		return p, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidHistoryPeriod, s)
}

// Since returns the start of the period when it ends at now. AllTime starts at the zero time.
func (p HistoryPeriod) Since(now time.Time) time.Time {
	switch p {
	case PastHour:
		return now.Add(-time.Hour)
	case Past12Hours:
		return now.Add(-12 * time.Hour)
	case PastDay:
		return now.Add(-24 * time.Hour)
	case Past15Days:
		return now.AddDate(0, 0, -15)
	case Past30Days:
		return now.AddDate(0, 0, -30)
	case Past6Months:
		return now.AddDate(0, -6, 0)
	case PastYear:
		return now.AddDate(-1, 0, 0)
	}

	return time.Time{}
}
