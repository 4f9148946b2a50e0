// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldur_test

import (
	"testing"
	"time"

	"cloudeng.io/caldur"
)

func TestTimeDate(t *testing.T) {
	td := newTimeDate(2024, 2, 29)
	y, m, d := td.YMD()
	if y != 2024 || m != 2 || d != 29 {
		t.Errorf("got %v %v %v, want 2024 2 29", y, m, d)
	}
	if got, want := td.String(), "2024-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The time of day is discarded.
	noon := caldur.NewTimeDate(time.Date(2024, 2, 29, 12, 30, 0, 0, time.UTC))
	if got, want := noon.Compare(td), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := td.Tomorrow(), newTimeDate(2024, 3, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// time.Date normalizes non-existent dates; FromYMD must reject them.
	if _, ok := td.FromYMD(2023, 2, 29); ok {
		t.Errorf("expected Feb-29-2023 to be rejected")
	}
	if _, ok := td.FromYMD(2023, 6, 31); ok {
		t.Errorf("expected Jun-31-2023 to be rejected")
	}
	if when, ok := td.FromYMD(2023, 6, 30); !ok || when != newTimeDate(2023, 6, 30) {
		t.Errorf("got %v, %v", when, ok)
	}
}

func TestTimeDateDurations(t *testing.T) {
	ntd := newTimeDate
	for _, tc := range []struct {
		a, b caldur.TimeDate
		want string
	}{
		{ntd(2020, 4, 8), ntd(1988, 6, 16), "31 years, 9 months, 23 days ago"},
		{ntd(1999, 12, 31), ntd(1999, 12, 31), "same day"},
		{ntd(2005, 3, 1), ntd(2004, 2, 29), "1 year ago"},
		{ntd(2000, 7, 31), ntd(2000, 5, 31), "2 months ago"},
		{ntd(2000, 8, 31), ntd(2000, 6, 30), "2 months, 1 day ago"},
		{ntd(2000, 8, 31), ntd(2000, 7, 1), "1 month, 30 days ago"},
	} {
		if got, want := caldur.Between(tc.a, tc.b).String(), tc.want; got != want {
			t.Errorf("%v vs %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}

// The two Date implementations agree on the same calendar dates.
func TestTimeDateAgreement(t *testing.T) {
	later := newCalendarDate(2025, 3, 15)
	tdLater := newTimeDate(2025, 3, 15)
	start := newCalendarDate(2024, 12, 20)
	tdStart := newTimeDate(2024, 12, 20)
	for start.Compare(later) <= 0 {
		cd := caldur.Between(later, start)
		td := caldur.Between(tdLater, tdStart)
		if cd != td {
			t.Errorf("%v: got %v and %v", start, cd, td)
		}
		start = start.Tomorrow()
		tdStart = tdStart.Tomorrow()
	}
}

// TimeDates built from times in different locations compare by civil
// date alone.
func TestTimeDateLocations(t *testing.T) {
	aest := time.FixedZone("AEST", 10*60*60)
	a := caldur.NewTimeDate(time.Date(2024, 2, 29, 23, 0, 0, 0, aest))
	b := newTimeDate(2024, 2, 29)
	if got, want := a.Compare(b), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := caldur.Between(a, b).String(), "same day"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := caldur.Between(a.Tomorrow(), b).String(), "1 day ago"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSince(t *testing.T) {
	if got := caldur.Since(time.Now()); !got.IsZero() {
		t.Errorf("expected a zero duration: %v", got)
	}
	if got, want := caldur.Since(time.Now()).String(), "same day"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarDateFromTime(t *testing.T) {
	when := time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)
	if got, want := caldur.CalendarDateFromTime(when), newCalendarDate(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
