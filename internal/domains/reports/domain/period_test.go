package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodToday, ParsePeriod("today"))
	assert.Equal(t, PeriodWeek, ParsePeriod("week"))
	assert.Equal(t, PeriodMonth, ParsePeriod("month"))
	assert.Equal(t, PeriodYear, ParsePeriod("year"))

	assert.Equal(t, PeriodToday, ParsePeriod(""))
	assert.Equal(t, PeriodToday, ParsePeriod("quarter"))
	assert.Equal(t, PeriodToday, ParsePeriod("WEEK"))
}

func TestResolveWindows(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	now := time.Date(2026, time.August, 31, 15, 30, 0, 0, loc)

	today := PeriodToday.Resolve(now)
	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, loc), today.Start)
	assert.Equal(t, now, today.End)

	week := PeriodWeek.Resolve(now)
	assert.Equal(t, now.AddDate(0, 0, -7), week.Start)
	assert.Equal(t, now, week.End)

	month := PeriodMonth.Resolve(now)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, loc), month.Start)

	year := PeriodYear.Resolve(now)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, loc), year.Start)
}

func TestResolveUsesNowLocation(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 30, 0, 0, time.UTC)
	window := PeriodToday.Resolve(now)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), window.Start)
}
