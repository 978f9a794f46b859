package dayclock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rebecacoelho/nlw-setup/pkg/dayclock"
)

func TestDayBoundary(t *testing.T) {
	t.Run("zeroes the time of day", func(t *testing.T) {
		ts := time.Date(2023, 1, 10, 15, 42, 13, 999, time.UTC)
		got := dayclock.DayBoundary(ts)
		assert.Equal(t, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), got)
	})
	t.Run("already truncated timestamp is unchanged", func(t *testing.T) {
		ts := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, ts, dayclock.DayBoundary(ts))
	})
	t.Run("non-UTC input lands on the UTC calendar date", func(t *testing.T) {
		// 23:30 in UTC-5 is already the next day in UTC
		loc := time.FixedZone("UTC-5", -5*60*60)
		ts := time.Date(2023, 1, 10, 23, 30, 0, 0, loc)
		got := dayclock.DayBoundary(ts)
		assert.Equal(t, time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC), got)
	})
	t.Run("idempotent", func(t *testing.T) {
		ts := time.Date(2023, 1, 10, 15, 42, 13, 999, time.UTC)
		once := dayclock.DayBoundary(ts)
		assert.Equal(t, once, dayclock.DayBoundary(once))
	})
}

func TestWeekdayIndex(t *testing.T) {
	t.Run("sunday is zero", func(t *testing.T) {
		// 2023-01-08 was a Sunday
		assert.Equal(t, 0, dayclock.WeekdayIndex(time.Date(2023, 1, 8, 12, 0, 0, 0, time.UTC)))
	})
	t.Run("saturday is six", func(t *testing.T) {
		assert.Equal(t, 6, dayclock.WeekdayIndex(time.Date(2023, 1, 14, 12, 0, 0, 0, time.UTC)))
	})
	t.Run("derived from the UTC date, not the local one", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		// Tuesday 23:30 in UTC-5 is Wednesday in UTC
		ts := time.Date(2023, 1, 10, 23, 30, 0, 0, loc)
		assert.Equal(t, 3, dayclock.WeekdayIndex(ts))
	})
	t.Run("agrees with DayBoundary", func(t *testing.T) {
		ts := time.Date(2023, 1, 13, 18, 3, 0, 0, time.UTC)
		assert.Equal(t, dayclock.WeekdayIndex(ts), dayclock.WeekdayIndex(dayclock.DayBoundary(ts)))
	})
}
