// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldur_test

import (
	"testing"
	"time"

	"cloudeng.io/caldur"
)

func newCalendarDate(year, month, day int) caldur.CalendarDate {
	return caldur.NewCalendarDate(year, caldur.Month(month), day)
}

func newTimeDate(year, month, day int) caldur.TimeDate {
	return caldur.NewTimeDate(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

func mustParseDate(t *testing.T, val string) caldur.CalendarDate {
	t.Helper()
	var cd caldur.CalendarDate
	if err := cd.Parse(val); err != nil {
		t.Fatalf("failed: %v: %v", val, err)
	}
	return cd
}
