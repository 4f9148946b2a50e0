// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldur

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when parsing a date that is malformed or does
// not exist in the calendar.
var ErrInvalidDate = errors.New("invalid date")

// MaxYear is the largest year representable by a CalendarDate.
const MaxYear = 9999

// CalendarDate represents a date with a year, month and day at day
// granularity. The year is stored in the top bits, then the month and the
// day in the low byte, so that the numeric ordering of CalendarDate values
// is their chronological ordering. Years range from 1 to MaxYear.
type CalendarDate uint64

// NewCalendarDate returns the CalendarDate for the given year, month and day.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint64(year)<<16 | uint64(month)<<8 | uint64(day))
}

// CalendarDateFromTime returns the CalendarDate for the civil date of the
// given time in its location.
func CalendarDateFromTime(when time.Time) CalendarDate {
	return NewCalendarDate(when.Year(), Month(when.Month()), when.Day())
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// YMD implements Date.
func (cd CalendarDate) YMD() (year int, month Month, day int) {
	return cd.Year(), cd.Month(), cd.Day()
}

// FromYMD implements Date. The year must be in the range 1 to MaxYear.
func (cd CalendarDate) FromYMD(year int, month Month, day int) (CalendarDate, bool) {
	if year < 1 || year > MaxYear || month < 1 || month > 12 {
		return 0, false
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, false
	}
	return NewCalendarDate(year, month, day), true
}

// Tomorrow implements Date, returning the date of the next day.
// Dec-31 wraps to Jan-01 of the following year. Advancing past
// Dec-31 of MaxYear panics.
func (cd CalendarDate) Tomorrow() CalendarDate {
	year, month, day := cd.YMD()
	if day < DaysInMonth(year, month) {
		return NewCalendarDate(year, month, day+1)
	}
	if month == 12 {
		if year == MaxYear {
			panic("no day after the maximum representable date")
		}
		return NewCalendarDate(year+1, 1, 1)
	}
	return NewCalendarDate(year, month+1, 1)
}

// Compare implements Date.
func (cd CalendarDate) Compare(other CalendarDate) int {
	switch {
	case cd < other:
		return -1
	case cd > other:
		return 1
	}
	return 0
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), int(cd.Month()), cd.Day())
}

const expectedCalendarDateFormats = "2006-01-02, Jan-02-2006 or 01/02/2006"

// Parse a calendar date in formats '2006-01-02', 'Jan-02-2006' or
// '01/02/2006' with error checking for a valid month and day, including
// Feb-29 in non-leap years.
func (cd *CalendarDate) Parse(val string) error {
	var year, day int
	var month Month
	var err error
	switch {
	case strings.Contains(val, "/"):
		parts := strings.Split(val, "/")
		if len(parts) != 3 {
			return fmt.Errorf("invalid date %q, expected %s: %w", val, expectedCalendarDateFormats, ErrInvalidDate)
		}
		if month, err = ParseNumericMonth(parts[0]); err != nil {
			return fmt.Errorf("invalid month %q in %q: %w", parts[0], val, ErrInvalidDate)
		}
		year, day, err = parseYearAndDay(parts[2], parts[1])
	case strings.Count(val, "-") == 2:
		parts := strings.Split(val, "-")
		if len(parts[0]) == 4 {
			if month, err = ParseNumericMonth(parts[1]); err != nil {
				return fmt.Errorf("invalid month %q in %q: %w", parts[1], val, ErrInvalidDate)
			}
			year, day, err = parseYearAndDay(parts[0], parts[2])
			break
		}
		if month, err = ParseMonth(parts[0]); err != nil {
			return fmt.Errorf("invalid month %q in %q: %w", parts[0], val, ErrInvalidDate)
		}
		year, day, err = parseYearAndDay(parts[2], parts[1])
	default:
		return fmt.Errorf("invalid date %q, expected %s: %w", val, expectedCalendarDateFormats, ErrInvalidDate)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", val, ErrInvalidDate)
	}
	parsed, ok := CalendarDate(0).FromYMD(year, month, day)
	if !ok {
		return fmt.Errorf("invalid day in %q for %v %v: %d: %w", val, year, month, day, ErrInvalidDate)
	}
	*cd = parsed
	return nil
}

func parseYearAndDay(yval, dval string) (year, day int, err error) {
	if year, err = strconv.Atoi(yval); err != nil {
		return
	}
	day, err = strconv.Atoi(dval)
	return
}
