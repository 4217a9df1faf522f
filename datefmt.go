// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datefmt provides formatting and parsing of dates and times
// of day using compiled patterns built from the widely used date
// pattern letters (yyyy, MM, dd, HH, mm, ss etc). Dates and times
// are represented by the CalendarDate, TimeOfDay and DateTime types
// which carry no time zone and are independent of time.Time, though
// conversions to and from time.Time are provided. A pattern is
// compiled once into a Formatter and then reused for any number of
// Format and Parse calls; the package level ISODate, ISOTime and
// ISODateTime formatters cover the common ISO 8601 layouts and
// define the String and text marshalling behaviour of the three
// types.
package datefmt

import "fmt"

// Value is implemented by CalendarDate, TimeOfDay and DateTime, the
// three types that a Formatter can format and that Parse can return.
type Value interface {
	fmt.Stringer
	fields() fieldSet
}

// Kind identifies which of the three Value types a pattern applies
// to, based on the classes of field the pattern refers to.
type Kind int

const (
	KindNone Kind = iota
	KindCalendarDate
	KindTimeOfDay
	KindDateTime
)

func (k Kind) String() string {
	switch k {
	case KindCalendarDate:
		return "calendar date"
	case KindTimeOfDay:
		return "time of day"
	case KindDateTime:
		return "date-time"
	}
	return "none"
}

// fieldSet records the date and time fields that a pattern refers to
// or that a value can supply, one bit per field.
type fieldSet uint16

const (
	fieldYear fieldSet = 1 << iota
	fieldMonth
	fieldDay
	fieldWeekday
	fieldHour
	fieldClockHour
	fieldMinute
	fieldSecond
	fieldFraction
	fieldDayPeriod

	dateFields = fieldYear | fieldMonth | fieldDay | fieldWeekday
	timeFields = fieldHour | fieldClockHour | fieldMinute | fieldSecond | fieldFraction | fieldDayPeriod
)

func fieldName(f fieldSet) string {
	switch f {
	case fieldYear:
		return "year"
	case fieldMonth:
		return "month"
	case fieldDay:
		return "day"
	case fieldWeekday:
		return "weekday"
	case fieldHour:
		return "hour"
	case fieldClockHour:
		return "clock hour"
	case fieldMinute:
		return "minute"
	case fieldSecond:
		return "second"
	case fieldFraction:
		return "fraction of second"
	case fieldDayPeriod:
		return "am/pm"
	}
	return "unknown"
}

func kindForFields(f fieldSet) Kind {
	hasDate := f&dateFields != 0
	hasTime := f&timeFields != 0
	switch {
	case hasDate && hasTime:
		return KindDateTime
	case hasDate:
		return KindCalendarDate
	case hasTime:
		return KindTimeOfDay
	}
	return KindNone
}
