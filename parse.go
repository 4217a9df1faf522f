// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parsed holds the field values extracted from the input text before
// they are assembled and validated.
type parsed struct {
	year         int
	month        int
	day          int
	weekday      int
	hour         int
	clockHour    int
	minute       int
	second       int
	nanos        int
	pm           bool
	twoDigitYear bool
	got          fieldSet
}

// Parse extracts a value from text using the pattern. The returned
// Value is a CalendarDate, TimeOfDay or DateTime as reported by
// Kind. It returns an error wrapping ErrParseMismatch if the text
// does not have the shape the pattern requires, including when text
// remains after the pattern is exhausted, and an error wrapping
// ErrInvalidDateValue if the text matches structurally but the
// fields do not assemble into a valid value, for example February
// 30th, a weekday that contradicts the date, or a pattern that does
// not determine a complete date or time.
func (f *Formatter) Parse(text string) (Value, error) {
	p, err := f.scan(text)
	if err != nil {
		return nil, err
	}
	switch f.kind {
	case KindCalendarDate:
		return f.assembleDate(text, p)
	case KindTimeOfDay:
		return f.assembleTime(text, p)
	case KindDateTime:
		cd, err := f.assembleDate(text, p)
		if err != nil {
			return nil, err
		}
		tod, err := f.assembleTime(text, p)
		if err != nil {
			return nil, err
		}
		return NewDateTime(cd, tod), nil
	}
	return nil, fmt.Errorf("pattern %q has no date or time fields: %w", f.pattern, ErrInvalidDateValue)
}

// ParseCalendarDate is like Parse for a pattern whose Kind is
// KindCalendarDate. It returns an error wrapping ErrUnsupportedField
// if the pattern refers to any other kind of value.
func (f *Formatter) ParseCalendarDate(text string) (CalendarDate, error) {
	if f.kind != KindCalendarDate {
		return 0, fmt.Errorf("pattern %q describes a %s, not a calendar date: %w", f.pattern, f.kind, ErrUnsupportedField)
	}
	v, err := f.Parse(text)
	if err != nil {
		return 0, err
	}
	return v.(CalendarDate), nil
}

// ParseTimeOfDay is like Parse for a pattern whose Kind is
// KindTimeOfDay. It returns an error wrapping ErrUnsupportedField if
// the pattern refers to any other kind of value.
func (f *Formatter) ParseTimeOfDay(text string) (TimeOfDay, error) {
	if f.kind != KindTimeOfDay {
		return 0, fmt.Errorf("pattern %q describes a %s, not a time of day: %w", f.pattern, f.kind, ErrUnsupportedField)
	}
	v, err := f.Parse(text)
	if err != nil {
		return 0, err
	}
	return v.(TimeOfDay), nil
}

// ParseDateTime is like Parse for a pattern whose Kind is
// KindDateTime. It returns an error wrapping ErrUnsupportedField if
// the pattern refers to any other kind of value.
func (f *Formatter) ParseDateTime(text string) (DateTime, error) {
	if f.kind != KindDateTime {
		return DateTime{}, fmt.Errorf("pattern %q describes a %s, not a date-time: %w", f.pattern, f.kind, ErrUnsupportedField)
	}
	v, err := f.Parse(text)
	if err != nil {
		return DateTime{}, err
	}
	return v.(DateTime), nil
}

func (f *Formatter) scan(text string) (parsed, error) {
	var p parsed
	pos := 0
	for _, seg := range f.segs {
		if seg.field == 0 {
			if !strings.HasPrefix(text[pos:], seg.lit) {
				return p, fmt.Errorf("expected %q at position %d of %q: %w", seg.lit, pos, text, ErrParseMismatch)
			}
			pos += len(seg.lit)
			continue
		}
		var err error
		if seg.text {
			pos, err = f.scanName(&p, seg, text, pos)
		} else {
			pos, err = f.scanNumber(&p, seg, text, pos)
		}
		if err != nil {
			return p, err
		}
		p.got |= seg.field
	}
	if pos != len(text) {
		return p, fmt.Errorf("unexpected trailing text %q in %q: %w", text[pos:], text, ErrParseMismatch)
	}
	return p, nil
}

// scanNumber extracts a numeric field, consuming exactly seg.width
// digits, or for a single letter field as many digits as are
// present.
func (f *Formatter) scanNumber(p *parsed, seg segment, text string, pos int) (int, error) {
	n := seg.width
	if n == 1 && seg.field != fieldFraction {
		n = 0
		for pos+n < len(text) && isDigit(text[pos+n]) {
			n++
		}
		if n == 0 {
			return 0, fmt.Errorf("expected digits for the %s at position %d of %q: %w", fieldName(seg.field), pos, text, ErrParseMismatch)
		}
	} else {
		if pos+n > len(text) {
			return 0, fmt.Errorf("expected %d digits for the %s at position %d of %q: %w", n, fieldName(seg.field), pos, text, ErrParseMismatch)
		}
		for i := pos; i < pos+n; i++ {
			if !isDigit(text[i]) {
				return 0, fmt.Errorf("expected %d digits for the %s at position %d of %q: %w", n, fieldName(seg.field), pos, text, ErrParseMismatch)
			}
		}
	}
	v, err := strconv.Atoi(text[pos : pos+n])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q at position %d of %q: %w", text[pos:pos+n], pos, text, ErrParseMismatch)
	}
	switch seg.field {
	case fieldYear:
		p.year = v
		p.twoDigitYear = seg.width == 2
	case fieldMonth:
		p.month = v
	case fieldDay:
		p.day = v
	case fieldHour:
		p.hour = v
	case fieldClockHour:
		p.clockHour = v
	case fieldMinute:
		p.minute = v
	case fieldSecond:
		p.second = v
	case fieldFraction:
		for i := seg.width; i < 9; i++ {
			v *= 10
		}
		p.nanos = v
	}
	return pos + n, nil
}

// scanName extracts a month, weekday or AM/PM field by name. Both
// full names and three letter abbreviations are accepted regardless
// of the width the field formats with, matching case-insensitively
// and preferring the longest name that matches.
func (f *Formatter) scanName(p *parsed, seg segment, text string, pos int) (int, error) {
	switch seg.field {
	case fieldMonth:
		idx, n := matchName(months, text[pos:])
		if idx < 0 {
			return 0, fmt.Errorf("expected a month name at position %d of %q: %w", pos, text, ErrParseMismatch)
		}
		p.month = idx + 1
		return pos + n, nil
	case fieldWeekday:
		idx, n := matchName(weekdays, text[pos:])
		if idx < 0 {
			return 0, fmt.Errorf("expected a weekday name at position %d of %q: %w", pos, text, ErrParseMismatch)
		}
		p.weekday = idx
		return pos + n, nil
	case fieldDayPeriod:
		switch {
		case hasFoldPrefix(text[pos:], "am"):
			p.pm = false
		case hasFoldPrefix(text[pos:], "pm"):
			p.pm = true
		default:
			return 0, fmt.Errorf("expected AM or PM at position %d of %q: %w", pos, text, ErrParseMismatch)
		}
		return pos + 2, nil
	}
	return 0, fmt.Errorf("expected a name at position %d of %q: %w", pos, text, ErrParseMismatch)
}

func (f *Formatter) assembleDate(text string, p parsed) (CalendarDate, error) {
	const needDate = fieldYear | fieldMonth | fieldDay
	if p.got&needDate != needDate {
		missing := fieldName(lowestField(needDate &^ p.got))
		return 0, fmt.Errorf("pattern %q does not determine a complete date, no %s: %w", f.pattern, missing, ErrInvalidDateValue)
	}
	year := p.year
	if p.twoDigitYear {
		if year >= 69 {
			year += 1900
		} else {
			year += 2000
		}
	}
	cd, err := NewCalendarDate(year, Month(p.month), p.day)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, err)
	}
	if p.got&fieldWeekday != 0 && cd.Weekday() != time.Weekday(p.weekday) {
		return 0, fmt.Errorf("%q: %s falls on a %s, not a %s: %w", text, cd, cd.Weekday(), time.Weekday(p.weekday), ErrInvalidDateValue)
	}
	return cd, nil
}

func (f *Formatter) assembleTime(text string, p parsed) (TimeOfDay, error) {
	if p.got&(fieldHour|fieldClockHour) == 0 {
		return 0, fmt.Errorf("pattern %q does not determine a complete time, no hour: %w", f.pattern, ErrInvalidDateValue)
	}
	hour := p.hour
	if p.got&fieldClockHour != 0 {
		if p.clockHour < 1 || p.clockHour > 12 {
			return 0, fmt.Errorf("%q: clock hour out of range [1..12]: %d: %w", text, p.clockHour, ErrInvalidDateValue)
		}
		hour = p.clockHour % 12
		if p.pm {
			hour += 12
		}
	}
	tod, err := NewTimeOfDay(hour, p.minute, p.second, p.nanos)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, err)
	}
	return tod, nil
}

// matchName returns the index of the longest name in names, or of a
// three letter abbreviation of one, that case-insensitively prefixes
// text, along with the number of bytes matched. It returns -1 if
// nothing matches.
func matchName(names []string, text string) (int, int) {
	idx, matched := -1, 0
	for i, name := range names {
		if n := len(name); n > matched && hasFoldPrefix(text, name) {
			idx, matched = i, n
		}
		if matched < 3 && hasFoldPrefix(text, name[:3]) {
			idx, matched = i, 3
		}
	}
	return idx, matched
}

func hasFoldPrefix(text, prefix string) bool {
	return len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
