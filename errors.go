// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

import "errors"

var (
	// ErrMalformedPattern is returned by Compile when a pattern cannot
	// be compiled, for example because it contains an unknown symbol,
	// an unterminated quoted section or an invalid combination of
	// fields. Use errors.Is to test for it.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrUnsupportedField is returned when a pattern refers to a field
	// that the value being formatted or parsed cannot supply, such as
	// a year when formatting a TimeOfDay.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrParseMismatch is returned by Parse when the input text does
	// not have the shape required by the pattern, including when text
	// remains after all pattern fields have been matched.
	ErrParseMismatch = errors.New("text does not match pattern")

	// ErrInvalidDateValue is returned when all fields parse
	// structurally but do not assemble into a valid value, such as
	// February 30th, an hour of 27, or a pattern that does not
	// determine a complete date or time.
	ErrInvalidDateValue = errors.New("invalid date or time value")
)
