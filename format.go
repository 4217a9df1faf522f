// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"strconv"
	"time"
)

// components holds the date and time fields of a Value in unpacked
// form for formatting.
type components struct {
	year    int
	month   Month
	day     int
	weekday time.Weekday
	hour    int
	minute  int
	second  int
	nanos   int
}

func componentsOf(v Value) components {
	var c components
	switch t := v.(type) {
	case CalendarDate:
		c.year, c.month, c.day = t.Year(), t.Month(), t.Day()
		c.weekday = t.Weekday()
	case TimeOfDay:
		c.hour, c.minute, c.second, c.nanos = t.Hour(), t.Minute(), t.Second(), t.Nanosecond()
	case DateTime:
		c.year, c.month, c.day = t.Year(), t.Month(), t.Day()
		c.weekday = t.Weekday()
		c.hour, c.minute, c.second, c.nanos = t.Hour(), t.Minute(), t.Second(), t.Nanosecond()
	}
	return c
}

// Format renders the value as text using the pattern. It returns an
// error wrapping ErrUnsupportedField if the pattern refers to a
// field that the value cannot supply, such as a year when formatting
// a TimeOfDay.
func (f *Formatter) Format(v Value) (string, error) {
	b, err := f.AppendFormat(make([]byte, 0, len(f.pattern)+8), v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendFormat is like Format but appends the rendered text to b and
// returns the extended buffer.
func (f *Formatter) AppendFormat(b []byte, v Value) ([]byte, error) {
	if missing := f.fields &^ v.fields(); missing != 0 {
		return nil, fmt.Errorf("pattern %q uses the %s field, not supported by %T: %w", f.pattern, fieldName(lowestField(missing)), v, ErrUnsupportedField)
	}
	c := componentsOf(v)
	for _, seg := range f.segs {
		if seg.field == 0 {
			b = append(b, seg.lit...)
			continue
		}
		switch seg.field {
		case fieldYear:
			if seg.width == 2 {
				b = appendInt(b, c.year%100, 2)
			} else {
				b = appendInt(b, c.year, seg.width)
			}
		case fieldMonth:
			switch {
			case !seg.text:
				b = appendInt(b, int(c.month), seg.width)
			case seg.width >= 4:
				b = append(b, c.month.String()...)
			default:
				b = append(b, c.month.Abbrev()...)
			}
		case fieldDay:
			b = appendInt(b, c.day, seg.width)
		case fieldWeekday:
			name := c.weekday.String()
			if seg.width < 4 {
				name = name[:3]
			}
			b = append(b, name...)
		case fieldHour:
			b = appendInt(b, c.hour, seg.width)
		case fieldClockHour:
			h := c.hour % 12
			if h == 0 {
				h = 12
			}
			b = appendInt(b, h, seg.width)
		case fieldMinute:
			b = appendInt(b, c.minute, seg.width)
		case fieldSecond:
			b = appendInt(b, c.second, seg.width)
		case fieldFraction:
			div := 1
			for i := 0; i < 9-seg.width; i++ {
				div *= 10
			}
			b = appendInt(b, c.nanos/div, seg.width)
		case fieldDayPeriod:
			if c.hour < 12 {
				b = append(b, "AM"...)
			} else {
				b = append(b, "PM"...)
			}
		}
	}
	return b, nil
}

func appendInt(b []byte, v, width int) []byte {
	s := strconv.Itoa(v)
	for w := len(s); w < width; w++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

func lowestField(f fieldSet) fieldSet {
	for bit := fieldSet(1); ; bit <<= 1 {
		if f&bit != 0 {
			return bit
		}
	}
}
