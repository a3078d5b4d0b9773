package service

import (
	"time"

	errorvalues "github.com/duoday/daily/internal/error_values"
)

// Calendar days are kept as ISO YYYY-MM-DD strings in UTC. The original
// wall-clock truncation was ambiguous around midnight and DST, so day
// boundaries are pinned to UTC throughout.
const dayLayout = "2006-01-02"

func dayString(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// noonUTC returns 12:00 UTC of t's UTC day, a safe anchor for stepping
// whole days backward without hitting day-boundary edge cases.
func noonUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// resolveDay validates an ISO day string, defaulting empty input to
// the current day.
func resolveDay(date string, now time.Time) (string, error) {
	if date == "" {
		return dayString(now), nil
	}
	if _, err := time.Parse(dayLayout, date); err != nil {
		return "", errorvalues.ErrInvalidDate
	}
	return date, nil
}
