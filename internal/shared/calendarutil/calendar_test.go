package calendarutil_test

import (
	"testing"
	"time"

	"go-workforce/internal/shared/calendarutil"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single monday", date(2025, 3, 3), date(2025, 3, 3), 1},
		{"single saturday", date(2025, 3, 1), date(2025, 3, 1), 0},
		{"full work week", date(2025, 3, 3), date(2025, 3, 7), 5},
		{"week including weekend", date(2025, 3, 3), date(2025, 3, 9), 5},
		{"two full weeks", date(2025, 3, 3), date(2025, 3, 14), 10},
		{"saturday to sunday", date(2025, 3, 1), date(2025, 3, 2), 0},
		{"end before start", date(2025, 3, 7), date(2025, 3, 3), 0},
		{"month spanning", date(2025, 2, 24), date(2025, 3, 7), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendarutil.WorkingDays(tt.start, tt.end))
		})
	}
}

func TestWorkingDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 3, 7, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 5, calendarutil.WorkingDays(start, end))
}

func TestOverlap(t *testing.T) {
	t.Run("partial overlap clips both ends", func(t *testing.T) {
		start, end, ok := calendarutil.Overlap(
			date(2025, 3, 3), date(2025, 3, 10),
			date(2025, 3, 7), date(2025, 3, 14),
		)
		assert.True(t, ok)
		assert.Equal(t, date(2025, 3, 7), start)
		assert.Equal(t, date(2025, 3, 10), end)
	})

	t.Run("containment returns inner range", func(t *testing.T) {
		start, end, ok := calendarutil.Overlap(
			date(2025, 3, 1), date(2025, 3, 31),
			date(2025, 3, 10), date(2025, 3, 12),
		)
		assert.True(t, ok)
		assert.Equal(t, date(2025, 3, 10), start)
		assert.Equal(t, date(2025, 3, 12), end)
	})

	t.Run("disjoint ranges", func(t *testing.T) {
		_, _, ok := calendarutil.Overlap(
			date(2025, 3, 1), date(2025, 3, 5),
			date(2025, 3, 6), date(2025, 3, 10),
		)
		assert.False(t, ok)
	})

	t.Run("single shared day", func(t *testing.T) {
		start, end, ok := calendarutil.Overlap(
			date(2025, 3, 1), date(2025, 3, 5),
			date(2025, 3, 5), date(2025, 3, 10),
		)
		assert.True(t, ok)
		assert.Equal(t, date(2025, 3, 5), start)
		assert.Equal(t, date(2025, 3, 5), end)
	})
}

func TestWeekBounds(t *testing.T) {
	// 2025-03-05 is a Wednesday; its week runs Sunday 03-02 to Saturday 03-08.
	start, end := calendarutil.WeekBounds(date(2025, 3, 5))
	assert.Equal(t, date(2025, 3, 2), start)
	assert.Equal(t, date(2025, 3, 8), end)

	// A Sunday anchors its own week.
	start, end = calendarutil.WeekBounds(date(2025, 3, 2))
	assert.Equal(t, date(2025, 3, 2), start)
	assert.Equal(t, date(2025, 3, 8), end)
}
