// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import "time"

// Clock provides the current time. Passing a Clock rather than
// calling time.Now directly allows tests and replay tooling to
// supply a fixed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is a Clock backed by time.Now.
var SystemClock Clock = systemClock{}

// Today returns the current date according to the clock.
func Today(clk Clock) CalendarDate {
	return CalendarDateFromTime(clk.Now())
}

// Now returns the current date and time according to the clock.
func Now(clk Clock) DateTime {
	return DateTimeFromTime(clk.Now())
}
