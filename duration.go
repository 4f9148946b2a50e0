// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package caldur provides support for computing calendar durations between
// dates. A calendar duration is a breakdown of elapsed time into whole
// years, months and days that takes into account the specific calendar
// dates involved: not all months have the same number of days, so "one
// month ago" names a different span depending on the date it is relative
// to, and similarly for leap years. The decomposition is generic over any
// day-granularity date type that implements Date; implementations are
// provided for the package's own CalendarDate and for time.Time via
// TimeDate.
package caldur

// Date is implemented by day-granularity date types that can take part in
// calendar duration calculations. Implementations must denote real
// calendar dates only.
type Date[T any] interface {
	// YMD returns the year, month and day (one-based) for the date.
	YMD() (year int, month Month, day int)
	// FromYMD returns the date for the given year, month and day, or
	// false if no such date exists in the calendar or the date is not
	// representable by T. The receiver is used only as a witness for
	// the concrete type.
	FromYMD(year int, month Month, day int) (T, bool)
	// Tomorrow returns the date of the next day. It must not be called
	// on the maximum representable date.
	Tomorrow() T
	// Compare returns -1, 0 or 1 depending on whether the date is
	// before, equal to or after other.
	Compare(other T) int
}

// Order indicates whether a duration extends into the past or the future.
type Order int8

const (
	// Future means the first date precedes the second, ie. the duration
	// is still to come relative to it.
	Future Order = -1
	// Same means the two dates are the same day.
	Same Order = 0
	// Past means the first date follows the second, ie. the duration has
	// already elapsed relative to it.
	Past Order = 1
)

// Duration represents a calendar duration as whole years, months and days
// together with the direction of the difference. It is the result of
// Between and is never modified thereafter.
type Duration struct {
	// Years is the number of whole years of duration.
	Years int
	// Months is the number of whole months in addition to Years,
	// always in the range 0-11.
	Months int
	// Days is the number of whole days in addition to Years and Months,
	// always in the range 0-30.
	Days int
	// Order records the position of the first date relative to the
	// second. Same implies that Years, Months and Days are all zero.
	Order Order
}

// IsZero returns true if the duration is less than one full day.
func (d Duration) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Days == 0
}

// fromYMDOrNext returns the date for the given year, month and day, or the
// nearest valid later date if no such date exists: Feb 29, 30 and 31
// normalize to Mar 1 of the same year, and day 31 of a 30 day month
// normalizes to day 30 of the following month (rolling into the next year
// from December). Any other failure for months 1-12 and days 1-31 is an
// internal invariant violation and panics.
func fromYMDOrNext[T Date[T]](w T, year int, month Month, day int) T {
	if d, ok := w.FromYMD(year, month, day); ok {
		return d
	}
	switch {
	case month == 2 && day >= 29:
		month, day = 3, 1
	case day == 31:
		if month == 12 {
			year++
			month = 1
		} else {
			month++
		}
		day = 30
	default:
		panic("no date or roll-forward for the given year, month and day")
	}
	d, ok := w.FromYMD(year, month, day)
	if !ok {
		panic("roll-forward past the maximum representable date")
	}
	return d
}

// Between returns the calendar duration between the two dates. The
// duration's Order records the position of a relative to b, so a date in
// b's past yields a Past duration.
//
// The decomposition anchors at the earlier of the two dates and walks
// forward greedily: whole years are consumed while the anchor's
// month and day, advanced a year at a time, still fall on or before the
// later date, then whole months in the same way, and the remainder is
// counted in single days. Probing "the same day-of-month, N months on"
// can name a date that does not exist; such probes are normalized by the
// roll-forward policy of fromYMDOrNext. A consequence of anchoring at the
// earlier date is that the month/day split is not symmetric around
// month-length boundaries: the duration from Jun-30 to Aug-31 is 2 months
// and 1 day, yet from the day after, Jul-01, it is 1 month and 30 days.
func Between[T Date[T]](a, b T) Duration {
	later, earlier := a, b
	order := Order(a.Compare(b))
	if order < 0 {
		later, earlier = b, a
	}

	y, m, d := earlier.YMD()

	var years int
	for {
		next := fromYMDOrNext(earlier, y+1, m, d)
		if later.Compare(next) < 0 {
			break
		}
		years++
		y++
		earlier = next
	}

	var months int
	for {
		ny, nm := y, m+1
		if nm == 13 {
			nm = 1
			ny++
		}
		next := fromYMDOrNext(earlier, ny, nm, d)
		if later.Compare(next) < 0 {
			break
		}
		months++
		y, m = ny, nm
		earlier = next
	}

	var days int
	for earlier.Compare(later) < 0 {
		days++
		earlier = earlier.Tomorrow()
	}

	return Duration{Years: years, Months: months, Days: days, Order: order}
}

// CalendarBetween is Between for CalendarDate values.
func CalendarBetween(a, b CalendarDate) Duration {
	return Between(a, b)
}
