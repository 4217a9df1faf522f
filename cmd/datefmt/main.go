// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datefmt formats, parses and sorts dates and times using
// pattern strings such as "yyyy-MM-dd" or "MMM d, h:mm a". Run
// "datefmt symbols" for a description of the pattern language.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datefmt"
	"cloudeng.io/logging/ctxlog"
)

const commandSpec = `name: datefmt
summary: format, parse and sort dates and times using pattern strings
commands:
  - name: format
    summary: reformat ISO format date, time or date-time values using a pattern
    arguments:
      - <value>
      - ...
  - name: parse
    summary: parse values written in a pattern and print them in ISO format
    arguments:
      - <value>
      - ...
  - name: now
    summary: print the current date or time using a pattern
  - name: sort
    summary: sort lines of dates or times into chronological order
    arguments:
      - "[file]"
  - name: symbols
    summary: describe the pattern letters and their meanings
  - name: aliases
    summary: manage named pattern aliases, consulted wherever a pattern is expected
    commands:
      - name: list
        summary: list built-in and user defined aliases
      - name: add
        summary: add or replace a user defined alias
        arguments:
          - <name>
          - <pattern>
      - name: remove
        summary: remove a user defined alias
        arguments:
          - <name>
`

type commonFlags struct {
	cmdutil.LoggingFlags
	AliasFile string `subcmd:"alias-file,$HOME/.datefmt/aliases.yml,'yaml file of user defined pattern aliases'"`
}

type formatFlags struct {
	commonFlags
	Pattern string `subcmd:"pattern,iso-datetime,'pattern or alias to print the values with'"`
}

type parseFlags struct {
	commonFlags
	Pattern string `subcmd:"pattern,iso-datetime,'pattern or alias the values are written in'"`
}

type nowFlags struct {
	commonFlags
	Pattern string `subcmd:"pattern,iso-datetime,'pattern or alias to print the current date or time with'"`
	UTC     bool   `subcmd:"utc,false,use UTC rather than the local time zone"`
}

type sortFlags struct {
	commonFlags
	Pattern     string `subcmd:"pattern,iso-datetime,'pattern or alias the input lines are written in'"`
	Reverse     bool   `subcmd:"reverse,false,sort into reverse chronological order"`
	SkipInvalid bool   `subcmd:"skip-invalid,false,skip lines that fail to parse rather than stopping"`
}

func (cf *commonFlags) initContext(ctx context.Context) (context.Context, *cmdutil.Logger, error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), logger, nil
}

func newCommandSet(cmds *commands) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commandSpec)
	cmdSet.Set("format").MustRunner(cmds.format, &formatFlags{})
	cmdSet.Set("parse").MustRunner(cmds.parse, &parseFlags{})
	cmdSet.Set("now").MustRunner(cmds.now, &nowFlags{})
	cmdSet.Set("sort").MustRunner(cmds.sort, &sortFlags{})
	cmdSet.Set("symbols").MustRunner(cmds.symbols, &commonFlags{})
	cmdSet.Set("aliases", "list").MustRunner(cmds.aliasesList, &commonFlags{})
	cmdSet.Set("aliases", "add").MustRunner(cmds.aliasesAdd, &commonFlags{})
	cmdSet.Set("aliases", "remove").MustRunner(cmds.aliasesRemove, &commonFlags{})
	return cmdSet
}

func main() {
	ctx := context.Background()
	cmdSet := newCommandSet(&commands{
		in:    os.Stdin,
		out:   os.Stdout,
		clock: datefmt.SystemClock,
	})
	subcmd.Dispatch(ctx, cmdSet)
}
