// Package calendarutil provides working-day counting and date-range
// intersection helpers used by the capacity and workload services.
//
// A working day is a Monday-Friday calendar day. Weekends are always
// excluded; holidays are not modeled here and must be recorded as approved
// availability periods instead.
package calendarutil

import "time"

// truncateToDay drops the time-of-day component, keeping the location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WorkingDays counts Monday-Friday days in [start, end], inclusive of both
// endpoints. Returns 0 when end precedes start.
func WorkingDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// Overlap returns the intersection of [aStart, aEnd] and [bStart, bEnd] at
// day granularity. The third return value is false when the ranges are
// disjoint.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) (time.Time, time.Time, bool) {
	aStart, aEnd = truncateToDay(aStart), truncateToDay(aEnd)
	bStart, bEnd = truncateToDay(bStart), truncateToDay(bEnd)

	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// WeekBounds returns the Sunday-Saturday week containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	day := truncateToDay(t)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	end := start.AddDate(0, 0, 6)
	return start, end
}
