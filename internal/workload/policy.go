package workload

import (
	"time"

	"go-workforce/internal/allocation"
	"go-workforce/internal/shared/calendarutil"
)

// AggregationPolicy decides how much of an overlapping allocation counts
// toward a window's total.
//
// CountFull preserves the historical behavior: the entire allocated-hours
// value of any allocation touching the window is counted, regardless of
// how much of the allocation falls inside it. ProrateOverlap scales by the
// working-day fraction of the allocation inside the window.
type AggregationPolicy string

const (
	CountFull      AggregationPolicy = "count_full"
	ProrateOverlap AggregationPolicy = "prorate_overlap"
)

// CountedHours returns the hours of alloc attributed to [start, end].
func (p AggregationPolicy) CountedHours(alloc allocation.ResourceAllocation, start, end time.Time) float64 {
	switch p {
	case ProrateOverlap:
		spanDays := calendarutil.WorkingDays(alloc.StartDate, alloc.EndDate)
		if spanDays == 0 {
			return 0
		}
		clipStart, clipEnd, ok := calendarutil.Overlap(alloc.StartDate, alloc.EndDate, start, end)
		if !ok {
			return 0
		}
		clipDays := calendarutil.WorkingDays(clipStart, clipEnd)
		return alloc.AllocatedHours * float64(clipDays) / float64(spanDays)
	default:
		return alloc.AllocatedHours
	}
}
