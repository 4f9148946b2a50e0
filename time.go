// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldur

import "time"

// TimeDate implements Date over time.Time at day granularity. The time of
// day is discarded on construction and the date is stored normalized to
// UTC, so TimeDates constructed from times in different locations compare
// purely by civil date.
type TimeDate struct {
	when time.Time
}

// NewTimeDate returns the TimeDate for the civil date of the given time
// in its location.
func NewTimeDate(when time.Time) TimeDate {
	return TimeDate{time.Date(when.Year(), when.Month(), when.Day(), 0, 0, 0, 0, time.UTC)}
}

// Time returns the underlying time at midnight.
func (td TimeDate) Time() time.Time {
	return td.when
}

// YMD implements Date.
func (td TimeDate) YMD() (year int, month Month, day int) {
	return td.when.Year(), Month(td.when.Month()), td.when.Day()
}

// FromYMD implements Date. time.Date normalizes out-of-range components
// (Feb 30 becomes Mar 1 or 2), so a date is only returned if the
// components survive the round trip unchanged.
func (td TimeDate) FromYMD(year int, month Month, day int) (TimeDate, bool) {
	when := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if when.Year() != year || Month(when.Month()) != month || when.Day() != day {
		return TimeDate{}, false
	}
	return TimeDate{when}, true
}

// Tomorrow implements Date.
func (td TimeDate) Tomorrow() TimeDate {
	return TimeDate{td.when.AddDate(0, 0, 1)}
}

// Compare implements Date.
func (td TimeDate) Compare(other TimeDate) int {
	return td.when.Compare(other.when)
}

func (td TimeDate) String() string {
	return td.when.Format(time.DateOnly)
}

// Since returns the calendar duration between today and the given time: a
// Past duration for times before today and a Future one for times after.
func Since(when time.Time) Duration {
	return Between(NewTimeDate(time.Now()), NewTimeDate(when))
}
