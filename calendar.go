// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"time"
)

// CalendarDate represents a date with a year, month and day in the
// proleptic Gregorian calendar with no associated time zone. It is
// stored as a single uint32 with the year in the high 16 bits, the
// month in the next 8 and the day in the low 8, hence comparing two
// CalendarDate values using <, <= etc orders them chronologically.
// Years 0 through 9999 are supported.
type CalendarDate uint32

// NewCalendarDate returns a CalendarDate for the given year, month
// and day. It returns an error wrapping ErrInvalidDateValue if the
// combination does not name a real date, such as February 30th.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if year < 0 || year > 9999 {
		return 0, fmt.Errorf("year out of range [0..9999]: %d: %w", year, ErrInvalidDateValue)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month out of range [1..12]: %d: %w", int(month), ErrInvalidDateValue)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("day out of range for %s %04d: %d: %w", month, year, day, ErrInvalidDateValue)
	}
	return newCalendarDate(year, month, day), nil
}

func newCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(uint16(year))<<16 | uint32(uint8(month))<<8 | uint32(uint8(day)))
}

// CalendarDateFromTime returns the CalendarDate for the given time in
// the time's location. Years outside of [0..9999] are clamped to
// Jan 1st year 0 or Dec 31st 9999.
func CalendarDateFromTime(when time.Time) CalendarDate {
	year, month, day := when.Date()
	if year < 0 {
		return newCalendarDate(0, 1, 1)
	}
	if year > 9999 {
		return newCalendarDate(9999, 12, 31)
	}
	return newCalendarDate(year, Month(month), day)
}

// Year returns the year for the date.
func (cd CalendarDate) Year() int {
	return int(cd >> 16 & 0xffff)
}

// Month returns the month for the date.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day within the month for the date.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// IsZero returns true for an unset CalendarDate.
func (cd CalendarDate) IsZero() bool {
	return cd == 0
}

// Weekday returns the day of the week for the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, time.UTC).Weekday()
}

// DayOfYear returns the day of the year for the date, 1-365 for
// non-leap years and 1-366 for leap years.
func (cd CalendarDate) DayOfYear() int {
	if IsLeap(cd.Year()) {
		return dayOfYearLeap[cd.Month()-1] + cd.Day()
	}
	return dayOfYear[cd.Month()-1] + cd.Day()
}

// Tomorrow returns the date of the next day. Dec 31 wraps to Jan 1
// of the following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 12 && day == 31 {
		return newCalendarDate(year+1, 1, 1)
	}
	if day >= DaysInMonth(year, month) {
		return newCalendarDate(year, month+1, 1)
	}
	return newCalendarDate(year, month, day+1)
}

// Yesterday returns the date of the previous day. Jan 1 wraps to
// Dec 31 of the previous year.
func (cd CalendarDate) Yesterday() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 1 && day == 1 {
		return newCalendarDate(year-1, 12, 31)
	}
	if day == 1 {
		return newCalendarDate(year, month-1, DaysInMonth(year, month-1))
	}
	return newCalendarDate(year, month, day-1)
}

// Time returns a time.Time for the date with the given time of day
// in the given location.
func (cd CalendarDate) Time(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), tod.Hour(), tod.Minute(), tod.Second(), tod.Nanosecond(), loc)
}

func (cd CalendarDate) fields() fieldSet {
	return dateFields
}

// String returns the date formatted by ISODate, eg. "1974-11-14".
func (cd CalendarDate) String() string {
	s, _ := ISODate.Format(cd)
	return s
}

// Parse parses a date formatted as per ISODate, eg. "1974-11-14".
func (cd *CalendarDate) Parse(val string) error {
	nd, err := ISODate.ParseCalendarDate(val)
	if err != nil {
		return err
	}
	*cd = nd
	return nil
}

// MarshalText implements encoding.TextMarshaler using the ISODate
// format.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the
// ISODate format.
func (cd *CalendarDate) UnmarshalText(data []byte) error {
	return cd.Parse(string(data))
}
