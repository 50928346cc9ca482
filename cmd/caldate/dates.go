// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/caldate"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type parseFlags struct {
	Unchecked bool `subcmd:"unchecked,false,'read the fixed width fields without validating them'"`
}

type sortFlags struct {
	Reverse bool `subcmd:"reverse,false,'print the latest date first'"`
	Unique  bool `subcmd:"unique,false,'print each date once'"`
}

func atoi(what, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %q", what, val)
	}
	return n, nil
}

func (a *app) format(_ context.Context, _ any, args []string) error {
	errs := &errors.M{}
	day, err := atoi("day", args[0])
	errs.Append(err)
	month, err := atoi("month", args[1])
	errs.Append(err)
	year, err := atoi("year", args[2])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	d, err := caldate.New(day, month, year)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, d)
	return nil
}

// forEachDate calls fn for every argument that parses as a date and
// returns all of the parse errors encountered.
func forEachDate(args []string, fn func(caldate.Date)) error {
	errs := &errors.M{}
	for _, arg := range args {
		d, err := caldate.Parse(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		fn(d)
	}
	return errs.Err()
}

func (a *app) parse(ctx context.Context, values any, args []string) error {
	fv := values.(*parseFlags)
	if !fv.Unchecked {
		return forEachDate(args, func(d caldate.Date) {
			fmt.Fprintf(a.out, "%v %v %v\n", d, d.Weekday(), d.YearDay())
		})
	}
	errs := &errors.M{}
	for _, arg := range args {
		d, err := caldate.ParseUnchecked(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		if err := d.Validate(); err != nil {
			ctxlog.Logger(ctx).Warn("unchecked date is invalid", "date", arg, "error", err)
			fmt.Fprintf(a.out, "%v invalid: %v\n", d, err)
			continue
		}
		fmt.Fprintf(a.out, "%v %v %v\n", d, d.Weekday(), d.YearDay())
	}
	return errs.Err()
}

func (a *app) add(_ context.Context, _ any, args []string) error {
	d, err := caldate.Parse(args[0])
	if err != nil {
		return err
	}
	n, err := atoi("number of days", args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, d.AddDays(n))
	return nil
}

func (a *app) diff(_ context.Context, _ any, args []string) error {
	var dates []caldate.Date
	if err := forEachDate(args, func(d caldate.Date) {
		dates = append(dates, d)
	}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, dates[0].Sub(dates[1]))
	return nil
}

func (a *app) weekday(_ context.Context, _ any, args []string) error {
	return forEachDate(args, func(d caldate.Date) {
		fmt.Fprintf(a.out, "%v %v\n", d, d.Weekday())
	})
}

func (a *app) yearday(_ context.Context, _ any, args []string) error {
	return forEachDate(args, func(d caldate.Date) {
		fmt.Fprintf(a.out, "%v %v\n", d, d.YearDay())
	})
}

func (a *app) leap(_ context.Context, _ any, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		year, err := atoi("year", arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		leap := "not a leap year"
		if caldate.IsLeap(year) {
			leap = "leap year"
		}
		fmt.Fprintf(a.out, "%v %v (%v days)\n", year, leap, caldate.DaysInYear(year))
	}
	return errs.Err()
}

func (a *app) fromUnix(_ context.Context, _ any, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		secs, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			errs.Append(fmt.Errorf("invalid timestamp: %q", arg))
			continue
		}
		d, err := caldate.FromUnix(secs)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintf(a.out, "%v %v\n", secs, d)
	}
	return errs.Err()
}

func (a *app) month(_ context.Context, _ any, args []string) error {
	errs := &errors.M{}
	month, err := atoi("month", args[0])
	errs.Append(err)
	year, err := atoi("year", args[1])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	first, err := caldate.New(1, month, year)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, monthCalendar(first))
	return nil
}

// monthCalendar returns the calendar for the month containing first, which
// must be the first day of that month, with weeks starting on Sunday.
func monthCalendar(first caldate.Date) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%v %v\n", first.Time().Month(), first.Year())
	for wd := caldate.Sunday; wd <= caldate.Saturday; wd++ {
		if wd > caldate.Sunday {
			out.WriteByte(' ')
		}
		out.WriteString(wd.String()[:2])
	}
	out.WriteByte('\n')
	col := int(first.Weekday())
	out.WriteString(strings.Repeat("   ", col))
	days := caldate.DaysInMonth(first.Year(), first.Month())
	for day := 1; day <= days; day++ {
		fmt.Fprintf(&out, "%2d", day)
		col++
		switch {
		case col == 7 || day == days:
			out.WriteByte('\n')
			col = 0
		default:
			out.WriteByte(' ')
		}
	}
	return out.String()
}

func (a *app) sort(_ context.Context, values any, args []string) error {
	fv := values.(*sortFlags)
	h := heap.NewMinMax(heap.WithSliceCap[int, caldate.Date](len(args) + 1))
	if err := forEachDate(args, func(d caldate.Date) {
		h.Push(d.Ordinal(), d)
	}); err != nil {
		return err
	}
	pop := h.PopMin
	if fv.Reverse {
		pop = h.PopMax
	}
	var prev caldate.Date
	for i := 0; h.Len() > 0; i++ {
		_, d := pop()
		if fv.Unique && i > 0 && d == prev {
			continue
		}
		fmt.Fprintln(a.out, d)
		prev = d
	}
	return nil
}
