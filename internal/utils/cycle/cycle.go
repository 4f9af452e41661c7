// Package cycle computes the bounds of the custom accounting period used
// everywhere in place of the calendar month: it runs from a configurable
// start day of one month (inclusive, 25 by default) to the same day of the
// next month (exclusive).
package cycle

import "time"

// DefaultStartDay is the day of month a cycle begins on unless configured
// otherwise.
const DefaultStartDay = 25

// Bounds returns the [start, end) interval of the cycle containing ref.
// Start is inclusive, end is exclusive, and the interval always spans exactly
// one calendar month. Both bounds are midnight UTC.
//
// When startDay exceeds the length of a month (e.g. 31 in February), the
// start clamps to that month's last day. time.Date would silently normalize
// the overflow into the following month, which would break start <= ref < end.
func Bounds(ref time.Time, startDay int) (start, end time.Time) {
	day := toDate(ref)

	start = monthStart(day.Year(), day.Month(), startDay)
	if day.Before(start) {
		year, month := day.Year(), day.Month()
		if month == time.January {
			year, month = year-1, time.December
		} else {
			month--
		}
		start = monthStart(year, month, startDay)
	}

	year, month := start.Year(), start.Month()
	if month == time.December {
		year, month = year+1, time.January
	} else {
		month++
	}
	end = monthStart(year, month, startDay)

	return start, end
}

// FromYearMonth returns the bounds of the cycle that starts in the given
// year and month. Navigation anchors hand their year/month here to hop
// between adjacent cycles.
func FromYearMonth(year int, month time.Month, startDay int) (start, end time.Time) {
	return Bounds(monthStart(year, month, startDay), startDay)
}

// PreviousAnchor is the last day of the cycle preceding the one starting at
// start; feeding it back through Bounds lands in that previous cycle.
func PreviousAnchor(start time.Time) time.Time {
	return start.AddDate(0, 0, -1)
}

// NextAnchor is the first day of the cycle following the one ending at end.
func NextAnchor(end time.Time) time.Time {
	return end
}

// monthStart builds the cycle start for a given month, clamping the day to
// the month's length.
func monthStart(year int, month time.Month, day int) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// toDate truncates a timestamp to midnight UTC so comparisons work at day
// granularity regardless of the caller's time zone or clock component.
func toDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
