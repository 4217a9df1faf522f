// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay represents a time of day with nanosecond resolution and
// no associated date or time zone. It is stored as a single uint64
// with the hour in bits 48-55, the minute in bits 40-47, the second
// in bits 32-39 and the nanoseconds in the low 32 bits, hence
// comparing two TimeOfDay values using <, <= etc orders them
// chronologically. The zero value is midnight.
type TimeOfDay uint64

// NewTimeOfDay creates a new TimeOfDay from the specified hour,
// minute, second and nanosecond. It returns an error wrapping
// ErrInvalidDateValue if any component is out of range.
func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range [0..23]: %d: %w", hour, ErrInvalidDateValue)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range [0..59]: %d: %w", minute, ErrInvalidDateValue)
	}
	if second < 0 || second > 59 {
		return 0, fmt.Errorf("second out of range [0..59]: %d: %w", second, ErrInvalidDateValue)
	}
	if nanosecond < 0 || nanosecond > 999999999 {
		return 0, fmt.Errorf("nanosecond out of range [0..999999999]: %d: %w", nanosecond, ErrInvalidDateValue)
	}
	return newTimeOfDay(hour, minute, second, nanosecond), nil
}

func newTimeOfDay(hour, minute, second, nanosecond int) TimeOfDay {
	return TimeOfDay(uint64(hour)<<48 | uint64(minute)<<40 | uint64(second)<<32 | uint64(uint32(nanosecond)))
}

// TimeOfDayFromTime returns a TimeOfDay from the specified time.Time.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return newTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

func (t TimeOfDay) Hour() int {
	return int(t >> 48 & 0xff)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 40 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t >> 32 & 0xff)
}

func (t TimeOfDay) Nanosecond() int {
	return int(t & 0xffffffff)
}

// Add delta to the time of day. The result is clamped to the range
// 00:00:00 to 23:59:59.999999999 rather than wrapping around
// midnight.
func (t TimeOfDay) Add(delta time.Duration) TimeOfDay {
	if delta == 0 {
		return t
	}
	nd := t.Duration() + delta
	if nd < 0 {
		return newTimeOfDay(0, 0, 0, 0)
	}
	if nd >= 24*time.Hour {
		return newTimeOfDay(23, 59, 59, 999999999)
	}
	nt := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(nd)
	return newTimeOfDay(nt.Hour(), nt.Minute(), nt.Second(), nt.Nanosecond())
}

// Duration returns the time.Duration elapsed since midnight for the
// TimeOfDay.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())
}

func (t TimeOfDay) fields() fieldSet {
	return timeFields
}

// String returns the time formatted by ISOTime, eg. "16:21:05", with
// a nine digit fraction appended when the nanosecond component is
// non-zero, eg. "16:21:05.500000000".
func (t TimeOfDay) String() string {
	var s string
	if t.Nanosecond() != 0 {
		s, _ = isoTimeNanos.Format(t)
		return s
	}
	s, _ = ISOTime.Format(t)
	return s
}

// Parse parses a time formatted as per ISOTime, with an optional
// nine digit fraction, eg. "16:21:05" or "16:21:05.500000000".
func (t *TimeOfDay) Parse(val string) error {
	f := ISOTime
	if strings.ContainsRune(val, '.') {
		f = isoTimeNanos
	}
	nt, err := f.ParseTimeOfDay(val)
	if err != nil {
		return err
	}
	*t = nt
	return nil
}

// MarshalText implements encoding.TextMarshaler using the ISOTime
// format.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the
// ISOTime format.
func (t *TimeOfDay) UnmarshalText(data []byte) error {
	return t.Parse(string(data))
}
