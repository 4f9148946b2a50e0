// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldur

import (
	"strconv"
	"strings"
)

func appendComponent(out *strings.Builder, n int, unit string) {
	if n == 0 {
		return
	}
	if out.Len() > 0 {
		out.WriteString(", ")
	}
	out.WriteString(strconv.Itoa(n))
	out.WriteString(" ")
	out.WriteString(unit)
	if n > 1 {
		out.WriteString("s")
	}
}

// Magnitude renders the duration in English without the direction suffix,
// eg. "31 years, 9 months, 23 days". Zero components are omitted and a
// zero duration renders as "same day".
func (d Duration) Magnitude() string {
	var out strings.Builder
	appendComponent(&out, d.Years, "year")
	appendComponent(&out, d.Months, "month")
	appendComponent(&out, d.Days, "day")
	if out.Len() == 0 {
		return "same day"
	}
	return out.String()
}

// String renders the duration in English with a direction suffix,
// eg. "31 years, 9 months, 23 days ago" for a Past duration or
// "2 months, 1 day to go" for a Future one. A zero duration renders as
// "same day". A Same order with a non-zero component is an internal
// invariant violation and panics.
func (d Duration) String() string {
	if d.IsZero() {
		return "same day"
	}
	switch d.Order {
	case Past:
		return d.Magnitude() + " ago"
	case Future:
		return d.Magnitude() + " to go"
	}
	panic("same-day ordering with a non-zero duration")
}
