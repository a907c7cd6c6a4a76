// Package domain holds the reporting periods and report shapes.
package domain

import "time"

// Period selects the reporting window relative to the current time.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps a raw selector onto a known period. Unrecognized values
// fall back to today rather than erroring, matching how the till UI treats a
// stale or missing selector.
func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	case PeriodYear:
		return PeriodYear
	default:
		return PeriodToday
	}
}

// Window is a half-open-feeling but inclusive reporting range: orders created
// in [Start, End] are counted.
type Window struct {
	Start time.Time
	End   time.Time
}

// Resolve computes the window for the period as of now. Calendar arithmetic
// (start of day, first of month, first of year) happens in now's location;
// week is a plain rolling seven days.
func (p Period) Resolve(now time.Time) Window {
	switch p {
	case PeriodWeek:
		return Window{Start: now.AddDate(0, 0, -7), End: now}
	case PeriodMonth:
		return Window{
			Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
			End:   now,
		}
	case PeriodYear:
		return Window{
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   now,
		}
	default:
		return Window{
			Start: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
			End:   now,
		}
	}
}
