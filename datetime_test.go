// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt_test

import (
	"encoding/json"
	"testing"
	"time"

	"cloudeng.io/datefmt"
)

func TestDateTime(t *testing.T) {
	dt := newDateTime(1955, 11, 5, 13, 0, 0, 0)
	if got, want := dt.Date(), newCalendarDate(1955, 11, 5); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.TimeOfDay(), newTimeOfDay(13, 0, 0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if dt.Year() != 1955 || dt.Month() != 11 || dt.Day() != 5 {
		t.Errorf("date accessors are wrong: %v", dt)
	}
	if dt.Hour() != 13 || dt.Minute() != 0 || dt.Second() != 0 || dt.Nanosecond() != 0 {
		t.Errorf("time accessors are wrong: %v", dt)
	}
	if got, want := dt.Weekday(), time.Saturday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	ordered := []datefmt.DateTime{
		newDateTime(1955, 11, 5, 13, 0, 0, 0),
		newDateTime(1955, 11, 5, 13, 0, 0, 1),
		newDateTime(1955, 11, 5, 14, 0, 0, 0),
		newDateTime(1955, 11, 6, 0, 0, 0, 0),
		newDateTime(1974, 11, 14, 0, 0, 0, 0),
	}
	for i := 1; i < len(ordered); i++ {
		if !ordered[i-1].Before(ordered[i]) {
			t.Errorf("%v is not ordered before %v", ordered[i-1], ordered[i])
		}
		if !ordered[i].After(ordered[i-1]) {
			t.Errorf("%v is not ordered after %v", ordered[i], ordered[i-1])
		}
		if got, want := ordered[i-1].Compare(ordered[i]), -1; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := ordered[i].Compare(ordered[i-1]), 1; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if ordered[0].Before(ordered[0]) || ordered[0].After(ordered[0]) {
		t.Errorf("a value is ordered relative to itself")
	}
	if got, want := ordered[0].Compare(ordered[0]), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	when := dt.Time(time.UTC)
	if got, want := when, time.Date(1955, 11, 5, 13, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datefmt.DateTimeFromTime(when), dt; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateTimeText(t *testing.T) {
	for _, tc := range []struct {
		dt  datefmt.DateTime
		val string
	}{
		{newDateTime(1955, 11, 5, 13, 0, 0, 0), "1955-11-05 13:00:00"},
		{newDateTime(1974, 11, 14, 16, 21, 5, 500000000), "1974-11-14 16:21:05.500000000"},
	} {
		if got, want := tc.dt.String(), tc.val; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		var dt datefmt.DateTime
		if err := dt.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
		}
		if got, want := dt, tc.dt; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []string{"", "1955-11-05", "13:00:00", "1955-11-05T13:00:00", "1955-02-30 13:00:00"} {
		var dt datefmt.DateTime
		if err := dt.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %q", tc)
		}
	}
}

func TestTextMarshalling(t *testing.T) {
	type event struct {
		Day   datefmt.CalendarDate `json:"day"`
		At    datefmt.TimeOfDay    `json:"at"`
		Stamp datefmt.DateTime     `json:"stamp"`
	}
	in := event{
		Day:   newCalendarDate(1974, 11, 14),
		At:    newTimeOfDay(16, 21, 0, 0),
		Stamp: newDateTime(1955, 11, 5, 13, 0, 0, 0),
	}
	buf, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	want := `{"day":"1974-11-14","at":"16:21:00","stamp":"1955-11-05 13:00:00"}`
	if got := string(buf); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var out event
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := out, in; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
