// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datefmt

// The package level formatters cover the common ISO 8601 layouts.
// They define the String, Parse and text marshalling behaviour of
// CalendarDate, TimeOfDay and DateTime and can be used like any
// other compiled Formatter.
var (
	// ISODate formats and parses calendar dates, eg. "1974-11-14".
	ISODate = MustCompile("yyyy-MM-dd")

	// ISOTime formats and parses times of day, eg. "16:21:05".
	ISOTime = MustCompile("HH:mm:ss")

	// ISODateTime formats and parses date-times, eg.
	// "1974-11-14 16:21:05".
	ISODateTime = MustCompile("yyyy-MM-dd HH:mm:ss")
)

// Variants used when the nanosecond component is non-zero.
var (
	isoTimeNanos     = MustCompile("HH:mm:ss.SSSSSSSSS")
	isoDateTimeNanos = MustCompile("yyyy-MM-dd HH:mm:ss.SSSSSSSSS")
)
