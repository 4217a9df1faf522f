// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import (
	"fmt"
	"strconv"

	"cloudeng.io/errors"
)

// A Formatter is a compiled pattern that can format and parse the
// values identified by its Kind. A Formatter is immutable and safe
// for concurrent use by multiple goroutines.
type Formatter struct {
	pattern string
	segs    []segment
	fields  fieldSet
	kind    Kind
}

// A segment is either a run of literal text (field == 0) or a single
// date or time field with its rendering width.
type segment struct {
	field fieldSet
	lit   string
	width int
	text  bool // rendered as a name rather than a number
}

// Compile compiles the pattern into a Formatter. The pattern letters
// are:
//
//	y        year, as many digits as needed
//	yy       two digit year, mapped to 1969-2068 when parsed
//	yyyy     zero padded year (likewise yyy and longer runs)
//	M, MM    numeric month, 1-12
//	MMM      abbreviated month name, "Jan" to "Dec"
//	MMMM     full month name, "January" to "December"
//	d, dd    day of month, 1-31
//	E, EEE   abbreviated weekday name, "Sun" to "Sat"
//	EEEE     full weekday name, "Sunday" to "Saturday"
//	H, HH    hour of day, 0-23
//	h, hh    clock hour, 1-12, requires a
//	m, mm    minute, 0-59
//	s, ss    second, 0-59
//	S..      fraction of a second, one digit per S, at most nine
//	a        AM or PM marker, requires h or hh
//
// For a run of two or more letters the field is zero padded to the
// width of the run when formatting and must occupy exactly that many
// digits when parsing; a single letter formats without padding and
// parses as many digits as are present, except for S which always
// denotes exactly one digit per letter. Any other ASCII letter is
// reserved and an error to use. Non-letters are matched literally,
// and text enclosed in single quotes is matched literally even when
// it contains pattern letters, with two single quotes denoting a
// literal quote.
//
// Compile returns an error wrapping ErrMalformedPattern if the
// pattern contains an unknown letter, an over-long field, a repeated
// field, an unterminated quote, both H and h, h without a, or a
// without h. All such errors are reported, not just the first.
func Compile(pattern string) (*Formatter, error) {
	f := &Formatter{pattern: pattern}
	errs := errors.M{}
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			f.segs = append(f.segs, segment{lit: string(lit)})
			lit = nil
		}
	}
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			text, n, err := consumeQuoted(pattern, i)
			if err != nil {
				errs.Append(err)
				i = len(pattern)
				break
			}
			lit = append(lit, text...)
			i += n
		case isPatternLetter(c):
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			seg, err := fieldSegment(c, n, i)
			if err != nil {
				errs.Append(err)
				i += n
				break
			}
			if f.fields&seg.field != 0 {
				errs.Append(fmt.Errorf("%s appears more than once, at position %d: %w", fieldName(seg.field), i, ErrMalformedPattern))
			}
			flush()
			f.fields |= seg.field
			f.segs = append(f.segs, seg)
			i += n
		default:
			lit = append(lit, c)
			i++
		}
	}
	flush()
	if f.fields&fieldHour != 0 && f.fields&fieldClockHour != 0 {
		errs.Append(fmt.Errorf("H and h cannot be combined: %w", ErrMalformedPattern))
	}
	if f.fields&fieldClockHour != 0 && f.fields&fieldDayPeriod == 0 {
		errs.Append(fmt.Errorf("h requires an a to disambiguate it: %w", ErrMalformedPattern))
	}
	if f.fields&fieldDayPeriod != 0 && f.fields&fieldClockHour == 0 {
		errs.Append(fmt.Errorf("a requires an h to apply to: %w", ErrMalformedPattern))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	f.kind = kindForFields(f.fields)
	return f, nil
}

// MustCompile is like Compile but panics if the pattern cannot be
// compiled. It simplifies the initialization of package level
// variables holding formatters.
func MustCompile(pattern string) *Formatter {
	f, err := Compile(pattern)
	if err != nil {
		panic(`datefmt: Compile(` + strconv.Quote(pattern) + `): ` + err.Error())
	}
	return f
}

// Pattern returns the pattern the Formatter was compiled from.
func (f *Formatter) Pattern() string {
	return f.pattern
}

// Kind returns the kind of value the pattern applies to, determined
// by the classes of field it refers to: KindCalendarDate for date
// fields only, KindTimeOfDay for time fields only, KindDateTime for
// both and KindNone for a pattern of pure literals.
func (f *Formatter) Kind() Kind {
	return f.kind
}

func (f *Formatter) String() string {
	return f.pattern
}

func isPatternLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// consumeQuoted consumes a quoted section starting at pattern[i],
// which is known to be a quote, returning the literal text it
// denotes and the number of bytes consumed.
func consumeQuoted(pattern string, i int) (string, int, error) {
	if i+1 < len(pattern) && pattern[i+1] == '\'' {
		return "'", 2, nil
	}
	var text []byte
	j := i + 1
	for j < len(pattern) {
		c := pattern[j]
		if c != '\'' {
			text = append(text, c)
			j++
			continue
		}
		if j+1 < len(pattern) && pattern[j+1] == '\'' {
			text = append(text, '\'')
			j += 2
			continue
		}
		return string(text), j + 1 - i, nil
	}
	return "", 0, fmt.Errorf("unterminated quote at position %d: %w", i, ErrMalformedPattern)
}

func fieldSegment(c byte, n, pos int) (segment, error) {
	overlong := func(limit int) error {
		return fmt.Errorf("%c repeated %d times at position %d, at most %d allowed: %w", c, n, pos, limit, ErrMalformedPattern)
	}
	switch c {
	case 'y':
		return segment{field: fieldYear, width: n}, nil
	case 'M':
		if n > 4 {
			return segment{}, overlong(4)
		}
		return segment{field: fieldMonth, width: n, text: n >= 3}, nil
	case 'd':
		if n > 2 {
			return segment{}, overlong(2)
		}
		return segment{field: fieldDay, width: n}, nil
	case 'E':
		if n > 4 {
			return segment{}, overlong(4)
		}
		return segment{field: fieldWeekday, width: n, text: true}, nil
	case 'H':
		if n > 2 {
			return segment{}, overlong(2)
		}
		return segment{field: fieldHour, width: n}, nil
	case 'h':
		if n > 2 {
			return segment{}, overlong(2)
		}
		return segment{field: fieldClockHour, width: n}, nil
	case 'm':
		if n > 2 {
			return segment{}, overlong(2)
		}
		return segment{field: fieldMinute, width: n}, nil
	case 's':
		if n > 2 {
			return segment{}, overlong(2)
		}
		return segment{field: fieldSecond, width: n}, nil
	case 'S':
		if n > 9 {
			return segment{}, overlong(9)
		}
		return segment{field: fieldFraction, width: n}, nil
	case 'a':
		if n > 1 {
			return segment{}, overlong(1)
		}
		return segment{field: fieldDayPeriod, width: n, text: true}, nil
	}
	return segment{}, fmt.Errorf("unknown pattern letter %c at position %d: %w", c, pos, ErrMalformedPattern)
}
