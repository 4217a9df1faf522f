// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt_test

import (
	"time"

	"cloudeng.io/datefmt"
)

func newCalendarDate(y, m, d int) datefmt.CalendarDate {
	cd, err := datefmt.NewCalendarDate(y, datefmt.Month(m), d)
	if err != nil {
		panic(err)
	}
	return cd
}

func newTimeOfDay(h, m, s, ns int) datefmt.TimeOfDay {
	tod, err := datefmt.NewTimeOfDay(h, m, s, ns)
	if err != nil {
		panic(err)
	}
	return tod
}

func newDateTime(y, mo, d, h, mi, s, ns int) datefmt.DateTime {
	return datefmt.NewDateTime(newCalendarDate(y, mo, d), newTimeOfDay(h, mi, s, ns))
}

type fixedClock struct {
	when time.Time
}

func (c fixedClock) Now() time.Time {
	return c.when
}
