// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// DefaultEpoch is the Gregorian date of BS 2000-01-01, the first day of
// the default table.
var DefaultEpoch = datetime.CalendarDate{Year: 1943, Month: 4, Day: 14}

const secondsPerDay = 24 * 60 * 60

// Option represents an option to NewConverter.
type Option func(o *options)

type options struct {
	loc   *time.Location
	epoch datetime.CalendarDate
}

// WithLocation sets the location whose midnight marks the boundary
// between days. Times are converted to this location before their
// calendar date is determined and all times returned by the
// converter are in this location. The default is time.UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

// WithEpoch sets the Gregorian date of the first day of the first year of
// the converter's table. The default is DefaultEpoch and so it need only
// be specified for tables other than DefaultTable.
func WithEpoch(epoch datetime.CalendarDate) Option {
	return func(o *options) {
		o.epoch = epoch
	}
}

// Converter converts between Gregorian times and BS dates using a Table
// and the Gregorian date of the table's first day. It is safe for
// concurrent use.
type Converter struct {
	table      *Table
	loc        *time.Location
	epoch      datetime.CalendarDate
	epochDays  int
	maxYearLen int
}

// NewConverter returns a Converter for the supplied table.
func NewConverter(table *Table, opts ...Option) (*Converter, error) {
	if table == nil {
		return nil, fmt.Errorf("nil calendar table: %w", ErrInvalidArgument)
	}
	o := options{loc: time.UTC, epoch: DefaultEpoch}
	for _, fn := range opts {
		fn(&o)
	}
	if o.loc == nil {
		return nil, fmt.Errorf("nil location: %w", ErrInvalidArgument)
	}
	e := o.epoch
	if e.Month < 1 || e.Month > 12 || e.Day < 1 || e.Day > datetime.DaysInMonth(e.Year, e.Month) {
		return nil, fmt.Errorf("epoch %v is not a valid date: %w", e, ErrInvalidArgument)
	}
	c := &Converter{
		table:     table,
		loc:       o.loc,
		epoch:     e,
		epochDays: civilDays(e.Year, time.Month(e.Month), e.Day),
	}
	for i := range table.months {
		c.maxYearLen = max(c.maxYearLen, table.cumulative[i]-table.daysBefore(i))
	}
	return c, nil
}

// MustNewConverter is like NewConverter but panics on error.
func MustNewConverter(table *Table, opts ...Option) *Converter {
	c, err := NewConverter(table, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultConverter = MustNewConverter(DefaultTable())

// DefaultConverter returns the converter used by the package level
// functions, ie. the default table with days starting at midnight UTC.
func DefaultConverter() *Converter {
	return defaultConverter
}

// civilDays returns the number of days between 1970-01-01 and the
// specified date, it is independent of any time zone.
func civilDays(year int, month time.Month, day int) int {
	return int(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// Table returns the converter's table.
func (c *Converter) Table() *Table {
	return c.table
}

// Location returns the converter's day boundary location.
func (c *Converter) Location() *time.Location {
	return c.loc
}

// Epoch returns the Gregorian date of the first day of the table.
func (c *Converter) Epoch() datetime.CalendarDate {
	return c.epoch
}

// DaysSinceEpoch returns the number of whole days between the epoch and
// the calendar date of t in the converter's location. It is negative for
// times before the epoch.
func (c *Converter) DaysSinceEpoch(t time.Time) int {
	y, m, d := t.In(c.loc).Date()
	return civilDays(y, m, d) - c.epochDays
}

// dateAt returns midnight of the day that is days after the epoch.
func (c *Converter) dateAt(days int) time.Time {
	return time.Date(c.epoch.Year, time.Month(c.epoch.Month), c.epoch.Day+days, 0, 0, 0, 0, c.loc)
}

// Min returns the first representable day.
func (c *Converter) Min() time.Time {
	return c.dateAt(0)
}

// Max returns the last representable day.
func (c *Converter) Max() time.Time {
	return c.dateAt(c.table.TotalDays() - 1)
}

// ToBS returns the BS year, 0-indexed month and day for the calendar date
// of t. The time of day is ignored.
func (c *Converter) ToBS(t time.Time) (year, month, day int, err error) {
	return c.fromDays(c.DaysSinceEpoch(t))
}

func (c *Converter) fromDays(days int) (year, month, day int, err error) {
	if days < 0 || days >= c.table.TotalDays() {
		return 0, 0, 0, fmt.Errorf("%v is outside of %v to %v: %w",
			c.dateAt(days).Format(time.DateOnly),
			c.Min().Format(time.DateOnly),
			c.Max().Format(time.DateOnly), ErrOutOfRange)
	}
	// No year is longer than maxYearLen, so the estimate never
	// overshoots and need only be corrected forwards.
	idx := days / c.maxYearLen
	for days >= c.table.cumulative[idx] {
		idx++
	}
	days -= c.table.daysBefore(idx)
	lengths := c.table.months[idx]
	for days >= lengths[month] {
		days -= lengths[month]
		month++
	}
	return c.table.startYear + idx, month, days + 1, nil
}

// floorDiv returns the quotient and non-negative remainder of a/b.
func floorDiv(a, b int) (q, r int) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return
}

// ToGregorian returns midnight, in the converter's location, of the
// Gregorian day for the BS year, 0-indexed month and day. Months outside
// of 0-11 are folded into the year, so that month 12 is the first month
// of the following year and month -1 the last month of the preceding one.
func (c *Converter) ToGregorian(year, month, day int) (time.Time, error) {
	days, err := c.toDays(year, month, day)
	if err != nil {
		return time.Time{}, err
	}
	return c.dateAt(days), nil
}

func (c *Converter) toDays(year, month, day int) (int, error) {
	yo, m := floorDiv(month, 12)
	year += yo
	idx, err := c.table.index(year)
	if err != nil {
		return 0, err
	}
	lengths := c.table.months[idx]
	if day < 1 || day > lengths[m] {
		return 0, fmt.Errorf("day %d is outside of 1-%d for %04d-%02d: %w", day, lengths[m], year, m+1, ErrOutOfRange)
	}
	days := c.table.daysBefore(idx)
	for _, n := range lengths[:m] {
		days += n
	}
	return days + day - 1, nil
}
