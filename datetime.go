// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"strings"
	"time"
)

// DateTime represents a date with a time of day, with no associated
// time zone.
type DateTime struct {
	date CalendarDate
	tod  TimeOfDay
}

// NewDateTime returns a DateTime for the given date and time of day.
func NewDateTime(date CalendarDate, tod TimeOfDay) DateTime {
	return DateTime{date: date, tod: tod}
}

// DateTimeFromTime returns the DateTime for the given time in the
// time's location.
func DateTimeFromTime(when time.Time) DateTime {
	return DateTime{date: CalendarDateFromTime(when), tod: TimeOfDayFromTime(when)}
}

// Date returns the date component.
func (dt DateTime) Date() CalendarDate {
	return dt.date
}

// TimeOfDay returns the time of day component.
func (dt DateTime) TimeOfDay() TimeOfDay {
	return dt.tod
}

func (dt DateTime) Year() int       { return dt.date.Year() }
func (dt DateTime) Month() Month    { return dt.date.Month() }
func (dt DateTime) Day() int        { return dt.date.Day() }
func (dt DateTime) Hour() int       { return dt.tod.Hour() }
func (dt DateTime) Minute() int     { return dt.tod.Minute() }
func (dt DateTime) Second() int     { return dt.tod.Second() }
func (dt DateTime) Nanosecond() int { return dt.tod.Nanosecond() }

// Weekday returns the day of the week for the date component.
func (dt DateTime) Weekday() time.Weekday {
	return dt.date.Weekday()
}

// Before returns true if dt is chronologically before dt2.
func (dt DateTime) Before(dt2 DateTime) bool {
	if dt.date != dt2.date {
		return dt.date < dt2.date
	}
	return dt.tod < dt2.tod
}

// After returns true if dt is chronologically after dt2.
func (dt DateTime) After(dt2 DateTime) bool {
	return dt2.Before(dt)
}

// Compare returns -1 if dt is before dt2, 0 if they are equal and
// 1 if dt is after dt2.
func (dt DateTime) Compare(dt2 DateTime) int {
	switch {
	case dt == dt2:
		return 0
	case dt.Before(dt2):
		return -1
	}
	return 1
}

// Time returns a time.Time for the date and time of day in the given
// location.
func (dt DateTime) Time(loc *time.Location) time.Time {
	return dt.date.Time(dt.tod, loc)
}

func (dt DateTime) fields() fieldSet {
	return dateFields | timeFields
}

// String returns the value formatted by ISODateTime, eg.
// "1955-11-05 13:00:00", with a nine digit fraction appended when
// the nanosecond component is non-zero.
func (dt DateTime) String() string {
	var s string
	if dt.tod.Nanosecond() != 0 {
		s, _ = isoDateTimeNanos.Format(dt)
		return s
	}
	s, _ = ISODateTime.Format(dt)
	return s
}

// Parse parses a value formatted as per ISODateTime, with an
// optional nine digit fraction, eg. "1955-11-05 13:00:00".
func (dt *DateTime) Parse(val string) error {
	f := ISODateTime
	if strings.ContainsRune(val, '.') {
		f = isoDateTimeNanos
	}
	ndt, err := f.ParseDateTime(val)
	if err != nil {
		return err
	}
	*dt = ndt
	return nil
}

// MarshalText implements encoding.TextMarshaler using the
// ISODateTime format.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the
// ISODateTime format.
func (dt *DateTime) UnmarshalText(data []byte) error {
	return dt.Parse(string(data))
}
