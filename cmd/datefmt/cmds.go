// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/datefmt"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/text/linewrap"
)

type commands struct {
	in    io.Reader
	out   io.Writer
	clock datefmt.Clock
}

// parseISO accepts any of the ISO forms, most specific first, so that
// a date-time argument is never truncated to its date.
func parseISO(text string) (datefmt.Value, error) {
	var dt datefmt.DateTime
	if err := dt.Parse(text); err == nil {
		return dt, nil
	}
	var cd datefmt.CalendarDate
	if err := cd.Parse(text); err == nil {
		return cd, nil
	}
	var tod datefmt.TimeOfDay
	if err := tod.Parse(text); err == nil {
		return tod, nil
	}
	return nil, fmt.Errorf("%q is not an ISO format date, time or date-time", text)
}

func (c *commands) format(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*formatFlags)
	ctx, logger, err := fl.initContext(ctx)
	if err != nil {
		return err
	}
	defer logger.Close()
	f, err := compilePattern(fl.AliasFile, fl.Pattern)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("compiled pattern", "pattern", f.Pattern(), "kind", f.Kind())
	errs := errors.M{}
	for _, arg := range args {
		v, err := parseISO(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		out, err := f.Format(v)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintln(c.out, out)
	}
	return errs.Err()
}

func (c *commands) parse(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*parseFlags)
	ctx, logger, err := fl.initContext(ctx)
	if err != nil {
		return err
	}
	defer logger.Close()
	f, err := compilePattern(fl.AliasFile, fl.Pattern)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("compiled pattern", "pattern", f.Pattern(), "kind", f.Kind())
	errs := errors.M{}
	for _, arg := range args {
		v, err := f.Parse(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintln(c.out, v)
	}
	return errs.Err()
}

func (c *commands) now(ctx context.Context, values interface{}, _ []string) error {
	fl := values.(*nowFlags)
	_, logger, err := fl.initContext(ctx)
	if err != nil {
		return err
	}
	defer logger.Close()
	f, err := compilePattern(fl.AliasFile, fl.Pattern)
	if err != nil {
		return err
	}
	when := c.clock.Now()
	if fl.UTC {
		when = when.UTC()
	}
	var v datefmt.Value
	switch f.Kind() {
	case datefmt.KindCalendarDate:
		v = datefmt.CalendarDateFromTime(when)
	case datefmt.KindTimeOfDay:
		v = datefmt.TimeOfDayFromTime(when)
	default:
		v = datefmt.DateTimeFromTime(when)
	}
	out, err := f.Format(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, out)
	return nil
}

// sortKey reduces a line to an integer that orders chronologically for
// the kind of value the pattern describes. Date-times are keyed at
// microsecond resolution.
func sortKey(f *datefmt.Formatter, text string) (int64, error) {
	switch f.Kind() {
	case datefmt.KindCalendarDate:
		cd, err := f.ParseCalendarDate(text)
		if err != nil {
			return 0, err
		}
		return int64(cd), nil
	case datefmt.KindTimeOfDay:
		tod, err := f.ParseTimeOfDay(text)
		if err != nil {
			return 0, err
		}
		return int64(tod), nil
	default:
		dt, err := f.ParseDateTime(text)
		if err != nil {
			return 0, err
		}
		return dt.Time(time.UTC).UnixMicro(), nil
	}
}

func (c *commands) sort(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*sortFlags)
	ctx, logger, err := fl.initContext(ctx)
	if err != nil {
		return err
	}
	defer logger.Close()
	f, err := compilePattern(fl.AliasFile, fl.Pattern)
	if err != nil {
		return err
	}
	if f.Kind() == datefmt.KindNone {
		return fmt.Errorf("pattern %q has no date or time fields to sort by", f.Pattern())
	}
	in, name := c.in, "stdin"
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in, name = file, args[0]
	}
	log := ctxlog.Logger(ctx)
	h := heap.NewMin(heap.WithSliceCap[int64, string](64))
	errs := errors.M{}
	lineno, skipped := 0, 0
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lineno++
		text := sc.Text()
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		key, err := sortKey(f, text)
		if err != nil {
			if fl.SkipInvalid {
				skipped++
				log.Debug("skipping line", "file", name, "line", lineno, "err", err)
				continue
			}
			errs.Append(fmt.Errorf("%v:%v: %w", name, lineno, err))
			continue
		}
		if fl.Reverse {
			key = -key
		}
		h.Push(key, text)
	}
	errs.Append(sc.Err())
	if err := errs.Err(); err != nil {
		return err
	}
	for h.Len() > 0 {
		_, text := h.Pop()
		fmt.Fprintln(c.out, text)
	}
	if skipped > 0 {
		log.Info("skipped lines that failed to parse", "file", name, "skipped", skipped)
	}
	return nil
}

const symbolsIntro = `Patterns are built from runs of the letters below. A single letter is the shortest form of a field and accepts any number of digits when parsing; repeating a letter fixes the printed and parsed width exactly, except for S where each letter is one digit of the fraction. Any character that is not a letter is copied through literally.`

const symbolsQuoting = `Text between single quotes is treated literally, including pattern letters, and two single quotes within quoted text produce one quote character. Runs of letters other than those listed, or repeated fields, are rejected when the pattern is compiled.`

var symbolHelp = []struct {
	letter, desc string
}{
	{"y", "year of era; yy is the two digit year, mapped to 1969 through 2068 when parsed, and longer runs are zero padded"},
	{"M", "month of year; M and MM are numeric, MMM is the abbreviated name and MMMM the full name"},
	{"d", "day of month"},
	{"E", "day of week name; E through EEE print the abbreviated name, EEEE the full name, and the day must agree with the date when parsed"},
	{"H", "hour of day, 0 through 23"},
	{"h", "clock hour, 1 through 12, must be combined with a"},
	{"m", "minute of hour"},
	{"s", "second of minute"},
	{"S", "fraction of a second, one digit of precision per letter"},
	{"a", "AM or PM marker"},
}

func (c *commands) symbols(ctx context.Context, values interface{}, _ []string) error {
	fl := values.(*commonFlags)
	_, logger, err := fl.initContext(ctx)
	if err != nil {
		return err
	}
	defer logger.Close()
	fmt.Fprintln(c.out, linewrap.Block(0, 76, symbolsIntro))
	fmt.Fprintln(c.out)
	for _, sym := range symbolHelp {
		fmt.Fprintf(c.out, "  %-4s%s\n", sym.letter, linewrap.Paragraph(0, 6, 70, sym.desc))
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, linewrap.Block(0, 76, symbolsQuoting))
	return nil
}
