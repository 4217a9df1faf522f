// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/datefmt"
)

func TestNewTimeOfDay(t *testing.T) {
	for _, tc := range []struct {
		hour, minute, second, nanos int
	}{
		{0, 0, 0, 0},
		{13, 0, 0, 0},
		{16, 21, 5, 500000000},
		{23, 59, 59, 999999999},
	} {
		tod, err := datefmt.NewTimeOfDay(tc.hour, tc.minute, tc.second, tc.nanos)
		if err != nil {
			t.Errorf("failed: %v: %v", tc, err)
			continue
		}
		if got, want := tod.Hour(), tc.hour; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := tod.Minute(), tc.minute; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := tod.Second(), tc.second; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := tod.Nanosecond(), tc.nanos; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []struct {
		hour, minute, second, nanos int
	}{
		{-1, 0, 0, 0},
		{24, 0, 0, 0},
		{0, 60, 0, 0},
		{0, 0, 60, 0},
		{0, 0, 0, 1000000000},
		{0, 0, 0, -1},
	} {
		_, err := datefmt.NewTimeOfDay(tc.hour, tc.minute, tc.second, tc.nanos)
		if err == nil {
			t.Errorf("failed to return an error: %v", tc)
			continue
		}
		if !errors.Is(err, datefmt.ErrInvalidDateValue) {
			t.Errorf("%v: wrong error: %v", tc, err)
		}
	}
}

func TestTimeOfDayOrder(t *testing.T) {
	tods := []datefmt.TimeOfDay{
		newTimeOfDay(0, 0, 0, 0),
		newTimeOfDay(0, 0, 0, 1),
		newTimeOfDay(0, 0, 1, 0),
		newTimeOfDay(0, 1, 0, 0),
		newTimeOfDay(1, 0, 0, 0),
		newTimeOfDay(23, 59, 59, 999999999),
	}
	for i := 1; i < len(tods); i++ {
		if !(tods[i-1] < tods[i]) {
			t.Errorf("%v is not ordered before %v", tods[i-1], tods[i])
		}
	}
}

func TestTimeOfDayAdd(t *testing.T) {
	nt := newTimeOfDay
	tod := nt(8, 1, 2, 0)
	if got, want := tod.Add(time.Hour), nt(9, 1, 2, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Add(time.Hour*11), nt(19, 1, 2, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Add(time.Hour*23), nt(23, 59, 59, 999999999); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Add(-time.Hour), nt(7, 1, 2, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Add(-time.Hour*24), nt(0, 0, 0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Add(time.Millisecond*500), nt(8, 1, 2, 500000000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tod.Add(0), tod; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimeOfDayDuration(t *testing.T) {
	if got, want := newTimeOfDay(1, 2, 3, 4).Duration(), time.Hour+2*time.Minute+3*time.Second+4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := newTimeOfDay(0, 0, 0, 0).Duration(), time.Duration(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimeOfDayText(t *testing.T) {
	for _, tc := range []struct {
		tod datefmt.TimeOfDay
		val string
	}{
		{newTimeOfDay(16, 21, 0, 0), "16:21:00"},
		{newTimeOfDay(13, 0, 0, 0), "13:00:00"},
		{newTimeOfDay(16, 21, 5, 500000000), "16:21:05.500000000"},
		{newTimeOfDay(0, 0, 0, 1), "00:00:00.000000001"},
	} {
		if got, want := tc.tod.String(), tc.val; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		var tod datefmt.TimeOfDay
		if err := tod.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
		}
		if got, want := tod, tc.tod; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []string{"", "16:21", "24:00:00", "16:21:05.5", "4pm"} {
		var tod datefmt.TimeOfDay
		if err := tod.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %q", tc)
		}
	}

	tod := newTimeOfDay(16, 21, 5, 0)
	buf, err := tod.MarshalText()
	if err != nil {
		t.Errorf("failed: %v", err)
	}
	var unmarshalled datefmt.TimeOfDay
	if err := unmarshalled.UnmarshalText(buf); err != nil {
		t.Errorf("failed: %v", err)
	}
	if got, want := unmarshalled, tod; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := datefmt.TimeOfDayFromTime(time.Date(1955, 11, 5, 13, 30, 10, 99, time.UTC)), newTimeOfDay(13, 30, 10, 99); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
