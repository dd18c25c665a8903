// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"

	"cloudeng.io/errors"
)

const (
	minMonthLength = 29
	maxMonthLength = 32
)

// Table records the length of every month for a contiguous span of BS
// years together with the running total of days from the first day of
// the first year through the end of each year. A Table is never modified
// once created and may be shared.
type Table struct {
	startYear  int
	months     [][12]int
	cumulative []int // days from the start of the table through the end of each year.
}

// NewTable creates a Table for the years starting at startYear, one entry
// of months per year. All invalid month lengths are reported, not just the
// first.
func NewTable(startYear int, months [][12]int) (*Table, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("empty calendar table: %w", ErrInvalidArgument)
	}
	var errs errors.M
	t := &Table{
		startYear:  startYear,
		months:     make([][12]int, len(months)),
		cumulative: make([]int, len(months)),
	}
	copy(t.months, months)
	total := 0
	for i, ml := range t.months {
		for m, n := range ml {
			if n < minMonthLength || n > maxMonthLength {
				errs.Append(fmt.Errorf("year %d, month %d: invalid length %d: %w", startYear+i, m+1, n, ErrInvalidArgument))
			}
			total += n
		}
		t.cumulative[i] = total
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(startYear int, months [][12]int) *Table {
	t, err := NewTable(startYear, months)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = MustNewTable(2000, monthLengths2000)

// DefaultTable returns the built-in table covering BS 2000 to 2090.
func DefaultTable() *Table {
	return defaultTable
}

// YearRange returns the first and last years in the table.
func (t *Table) YearRange() (minYear, maxYear int) {
	return t.startYear, t.startYear + len(t.months) - 1
}

// Len returns the number of years in the table.
func (t *Table) Len() int {
	return len(t.months)
}

// TotalDays returns the number of days spanned by the table.
func (t *Table) TotalDays() int {
	return t.cumulative[len(t.cumulative)-1]
}

func (t *Table) index(year int) (int, error) {
	idx := year - t.startYear
	if idx < 0 || idx >= len(t.months) {
		lo, hi := t.YearRange()
		return 0, fmt.Errorf("year %d is outside of %d-%d: %w", year, lo, hi, ErrOutOfRange)
	}
	return idx, nil
}

// daysBefore returns the number of days in the table that precede
// the year at idx.
func (t *Table) daysBefore(idx int) int {
	if idx == 0 {
		return 0
	}
	return t.cumulative[idx-1]
}

// DaysInMonth returns the number of days in the given year and 1-indexed
// month.
func (t *Table) DaysInMonth(year, month int) (int, error) {
	idx, err := t.index(year)
	if err != nil {
		return 0, err
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d is outside of 1-12: %w", month, ErrOutOfRange)
	}
	return t.months[idx][month-1], nil
}

// DaysInYear returns the number of days in the given year.
func (t *Table) DaysInYear(year int) (int, error) {
	idx, err := t.index(year)
	if err != nil {
		return 0, err
	}
	return t.cumulative[idx] - t.daysBefore(idx), nil
}

// MonthLengths returns the lengths of the months of the given year.
func (t *Table) MonthLengths(year int) ([12]int, error) {
	idx, err := t.index(year)
	if err != nil {
		return [12]int{}, err
	}
	return t.months[idx], nil
}
