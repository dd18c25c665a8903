// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/bsdate"
	"cloudeng.io/bsdate/monthgrid"
	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
)

type bs2adFlags struct {
	CommonFlags
}

type ad2bsFlags struct {
	CommonFlags
	Format string `subcmd:"format,,'format for the BS date using the tokens YYYY, YY, MM, M, DD and D, defaults to the config file setting or YYYY-MM-DD'"`
	Long   bool   `subcmd:"long,false,'print the BS date as <month name> <day>, <year>'"`
}

type calFlags struct {
	CommonFlags
	Fallback bool `subcmd:"fallback,false,display years outside of the supported range using approximate month lengths"`
}

type rangeFlags struct {
	CommonFlags
}

func bs2ad(ctx context.Context, values any, args []string) error {
	fv := values.(*bs2adFlags)
	ctx, s, done, err := fv.setup(ctx, "")
	defer done()
	if err != nil {
		return err
	}
	var d bsdate.Date
	if len(args) == 0 {
		d, err = s.conv.Now()
	} else {
		d, err = s.conv.Parse(args[0])
	}
	if err != nil {
		return err
	}
	ad := d.Time().Format(time.DateOnly)
	ctxlog.Logger(ctx).Debug("bs2ad", "bs", d.String(), "ad", ad)
	fmt.Fprintln(stdout, ad)
	return nil
}

// parseGregorian parses a Gregorian date in the same formats as
// accepted for BS dates.
func parseGregorian(val string) (datetime.CalendarDate, error) {
	year, month, day, err := bsdate.SplitDate(val)
	if err != nil {
		return datetime.CalendarDate{}, err
	}
	if month < 1 || month > 12 {
		return datetime.CalendarDate{}, fmt.Errorf("month %d is outside of 1-12: %w", month, bsdate.ErrOutOfRange)
	}
	if n := datetime.DaysInMonth(year, datetime.Month(month)); day < 1 || day > n {
		return datetime.CalendarDate{}, fmt.Errorf("day %d is outside of 1-%d for %04d-%02d: %w", day, n, year, month, bsdate.ErrOutOfRange)
	}
	return datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: day}, nil
}

func ad2bs(ctx context.Context, values any, args []string) error {
	fv := values.(*ad2bsFlags)
	ctx, s, done, err := fv.setup(ctx, fv.Format)
	defer done()
	if err != nil {
		return err
	}
	var d bsdate.Date
	if len(args) == 0 {
		d, err = s.conv.Now()
	} else {
		var cd datetime.CalendarDate
		cd, err = parseGregorian(args[0])
		if err != nil {
			return err
		}
		d, err = s.conv.FromTime(time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, s.conv.Location()))
	}
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("ad2bs", "ad", d.Time().Format(time.DateOnly), "bs", d.String())
	if fv.Long {
		fmt.Fprintln(stdout, d.Long())
		return nil
	}
	fmt.Fprintln(stdout, d.Format(s.format))
	return nil
}

// parseYearMonth parses a BS year and 1-indexed month of the form
// yyyy-mm, yyyy.mm or yyyy/mm and returns the month 0-indexed.
func parseYearMonth(val string) (year, month int, err error) {
	parts := strings.FieldsFunc(val, func(r rune) bool {
		return r == '-' || r == '.' || r == '/'
	})
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: expected yyyy-mm: %w", val, bsdate.ErrParse)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%q: invalid year: %w", val, bsdate.ErrParse)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%q: invalid month: %w", val, bsdate.ErrParse)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month %d is outside of 1-12: %w", month, bsdate.ErrOutOfRange)
	}
	return year, month - 1, nil
}

func cal(ctx context.Context, values any, args []string) error {
	fv := values.(*calFlags)
	ctx, s, done, err := fv.setup(ctx, "")
	defer done()
	if err != nil {
		return err
	}
	var year, month int
	if len(args) == 0 {
		now, err := s.conv.Now()
		if err != nil {
			return err
		}
		year, month = now.Year(), now.Month()
	} else {
		year, month, err = parseYearMonth(args[0])
		if err != nil {
			return err
		}
	}
	var opts []monthgrid.Option
	if fv.Fallback {
		opts = append(opts, monthgrid.WithFallback())
	}
	g, err := monthgrid.New(s.conv, year, month, opts...)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("cal", "year", year, "month", month+1, "fallback", g.Fallback)
	fmt.Fprint(stdout, g.String())
	if g.Fallback {
		fmt.Fprintln(stdout, "note: month lengths are approximate, the year is outside of the supported range")
	}
	return nil
}

func showRange(ctx context.Context, values any, _ []string) error {
	fv := values.(*rangeFlags)
	_, s, done, err := fv.setup(ctx, "")
	defer done()
	if err != nil {
		return err
	}
	first, err := s.conv.FromTime(s.conv.Min())
	if err != nil {
		return err
	}
	last, err := s.conv.FromTime(s.conv.Max())
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "BS: %v to %v\n", first, last)
	fmt.Fprintf(stdout, "AD: %v to %v\n", s.conv.Min().Format(time.DateOnly), s.conv.Max().Format(time.DateOnly))
	return nil
}
