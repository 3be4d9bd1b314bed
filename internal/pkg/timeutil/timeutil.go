package timeutil

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidRange is returned when a date range ends before it starts.
var ErrInvalidRange = errors.New("end date must not be before start date")

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// InclusiveDayCount counts calendar days between from and to, both endpoints
// included. Time-of-day is ignored: Jan 3 to Jan 5 is 3 days regardless of
// the clock readings on either end.
func InclusiveDayCount(from, to time.Time) (int, error) {
	fromDay := StartOfDay(from)
	toDay := StartOfDay(to)
	if toDay.Before(fromDay) {
		return 0, ErrInvalidRange
	}
	days := int(math.Ceil(toDay.Sub(fromDay).Hours()/24)) + 1
	return days, nil
}

// MonthRange returns the first instant of the month and the last instant of
// its final day, in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return first, EndOfDay(last)
}

// RoundHours converts a duration to fractional hours rounded to 2 decimals.
func RoundHours(d time.Duration) float64 {
	return Round2(d.Hours())
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
