// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command caldate performs calendar date calculations on dates written
// as DD/MM/YYYY.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: caldate
summary: calendar date calculations on dates written as DD/MM/YYYY
commands:
  - name: format
    summary: validate a day, month and year and print them as DD/MM/YYYY
    arguments:
      - <day>
      - <month>
      - <year>
  - name: parse
    summary: parse dates and print their day of the week and day of the year
    arguments:
      - <date>
      - ...
  - name: add
    summary: add a number of days, which may be negative, to a date
    arguments:
      - <date>
      - <days>
  - name: diff
    summary: print the signed number of days from the second date to the first
    arguments:
      - <date>
      - <date>
  - name: weekday
    summary: print the day of the week for each date
    arguments:
      - <date>
      - ...
  - name: yearday
    summary: print the day of the year for each date
    arguments:
      - <date>
      - ...
  - name: leap
    summary: report whether each year is a leap year
    arguments:
      - <year>
      - ...
  - name: from-unix
    summary: print the UTC date of each timestamp given as seconds since the Unix epoch
    arguments:
      - <seconds>
      - ...
  - name: month
    summary: print the calendar for a month
    arguments:
      - <month>
      - <year>
  - name: random
    summary: print randomly generated dates
  - name: sort
    summary: print dates in chronological order
    arguments:
      - <date>
      - ...
`

// GlobalFlags are accepted by all commands.
type GlobalFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file, see Config'"`
}

type noFlags struct{}

type app struct {
	out     io.Writer
	globals GlobalFlags
	config  Config
}

func newCommandSet(a *app) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	for name, runner := range map[string]subcmd.Runner{
		"format":    a.format,
		"add":       a.add,
		"diff":      a.diff,
		"weekday":   a.weekday,
		"yearday":   a.yearday,
		"leap":      a.leap,
		"from-unix": a.fromUnix,
		"month":     a.month,
	} {
		cmdSet.Set(name).MustRunnerAndFlags(runner,
			subcmd.MustRegisteredFlagSet(&noFlags{}))
	}
	cmdSet.Set("parse").MustRunnerAndFlags(a.parse,
		subcmd.MustRegisteredFlagSet(&parseFlags{}))
	cmdSet.Set("random").MustRunnerAndFlags(a.random,
		subcmd.MustRegisteredFlagSet(&randomFlags{}))
	cmdSet.Set("sort").MustRunnerAndFlags(a.sort,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))

	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&a.globals, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	cmdSet.WithMain(a.withConfigAndLogging)
	return cmdSet
}

// withConfigAndLogging loads the configuration file, if any, and creates
// the logger before running the command.
func (a *app) withConfigAndLogging(ctx context.Context, runner func(context.Context) error) error {
	if len(a.globals.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, a.globals.Config, &a.config); err != nil {
			return err
		}
	}
	logger, err := a.loggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close() //nolint:errcheck
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctxlog.Logger(ctx).Debug("caldate", "config", a.globals.Config)
	return runner(ctx)
}

// loggingConfig returns the logging section of the configuration file if
// present, otherwise the logging flags.
func (a *app) loggingConfig() cmdutil.LoggingConfig {
	if a.config.Logging != (cmdutil.LoggingConfig{}) {
		return a.config.Logging
	}
	return a.globals.LoggingConfig()
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(&app{out: os.Stdout}))
}
