// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package monthgrid lays out a BS month as rows of weeks for display.
//
// Years outside of a converter's table are normally an error. Display
// code that prefers to show something plausible may request a fallback
// with WithFallback, in which case such months are laid out using a
// fixed pattern of month lengths, starting on a Sunday, and the
// resulting Grid is marked as such.
package monthgrid

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/bsdate"
)

// FallbackMonthLengths are the month lengths used for years outside of
// a table when WithFallback is specified.
var FallbackMonthLengths = [12]int{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 30}

// Option represents an option for New and DaysInMonth.
type Option func(o *options)

type options struct {
	fallback bool
}

// WithFallback requests that years outside of the table be laid
// out using FallbackMonthLengths rather than returning an error.
func WithFallback() Option {
	return func(o *options) {
		o.fallback = true
	}
}

// Grid represents a single month. Each week starts on Sunday and days
// that are not part of the month are zero.
type Grid struct {
	Year     int
	Month    int // 0-indexed
	Days     int
	Fallback bool // set if FallbackMonthLengths were used.
	Weeks    [][7]int
}

// DaysInMonth returns the number of days in the 0-indexed month of year
// and whether the fallback pattern was used to obtain it.
func DaysInMonth(table *bsdate.Table, year, month int, opts ...Option) (int, bool, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if month < 0 || month > 11 {
		return 0, false, fmt.Errorf("month %d is outside of 0-11: %w", month, bsdate.ErrOutOfRange)
	}
	n, err := table.DaysInMonth(year, month+1)
	if err == nil {
		return n, false, nil
	}
	if !o.fallback {
		return 0, false, err
	}
	return FallbackMonthLengths[month], true, nil
}

// New returns the Grid for the 0-indexed month of year.
func New(conv *bsdate.Converter, year, month int, opts ...Option) (Grid, error) {
	n, fallback, err := DaysInMonth(conv.Table(), year, month, opts...)
	if err != nil {
		return Grid{}, err
	}
	first := time.Sunday
	if !fallback {
		d, err := conv.New(year, month, 1)
		if err != nil {
			return Grid{}, err
		}
		first = d.Weekday()
	}
	g := Grid{Year: year, Month: month, Days: n, Fallback: fallback}
	var week [7]int
	col := int(first)
	for day := 1; day <= n; day++ {
		week[col] = day
		col++
		if col == 7 {
			g.Weeks = append(g.Weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		g.Weeks = append(g.Weeks, week)
	}
	return g, nil
}

var dayHeadings = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// String renders the grid as a text calendar.
func (g Grid) String() string {
	var out strings.Builder
	title := fmt.Sprintf("%s %d", bsdate.MonthName(g.Month), g.Year)
	width := len(dayHeadings)*3 - 1
	fmt.Fprintf(&out, "%*s\n", (width+len(title))/2, title)
	out.WriteString(strings.Join(dayHeadings, " "))
	out.WriteByte('\n')
	for _, week := range g.Weeks {
		cells := make([]string, 7)
		for i, d := range week {
			if d == 0 {
				cells[i] = "  "
				continue
			}
			cells[i] = fmt.Sprintf("%2d", d)
		}
		out.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		out.WriteByte('\n')
	}
	return out.String()
}
