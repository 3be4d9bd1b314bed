package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	in := time.Date(2026, 1, 15, 18, 42, 7, 123, loc)
	got := StartOfDay(in)

	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2026, 1, 15, 3, 0, 0, 0, time.UTC)
	got := EndOfDay(in)

	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 59, got.Second())
	assert.Equal(t, in.Day(), got.Day())
	assert.True(t, got.Before(time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)))
}

func TestInclusiveDayCount(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 1, 3, 17, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "three days",
			from: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "time of day ignored",
			from: time.Date(2026, 1, 3, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2026, 1, 5, 0, 1, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "across month boundary",
			from: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
			want: 4,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := InclusiveDayCount(c.from, c.to)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestInclusiveDayCount_InvalidRange(t *testing.T) {
	from := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	_, err := InclusiveDayCount(from, to)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2026, time.February, time.UTC)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, 28, last.Day())
	assert.Equal(t, 23, last.Hour())
}

func TestRoundHours(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want float64
	}{
		{9*time.Hour + 30*time.Minute, 9.5},
		{3 * time.Hour, 3.0},
		{7*time.Hour + 59*time.Minute + 59*time.Second, 8.0},
		{10 * time.Minute, 0.17},
		{0, 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, RoundHours(c.d), 1e-9)
	}
}
