// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Date represents a BS date together with the equivalent Gregorian time.
// Both always refer to the same calendar day. Dates are values and may be
// freely copied, the With methods return new Dates rather than modifying
// the existing one. The zero value is not a valid date.
type Date struct {
	conv  *Converter
	year  int
	month int // 0-11
	day   int
	days  int // since the epoch
	when  time.Time
}

// FromTime returns the Date for t. The time of day of t is retained.
func (c *Converter) FromTime(t time.Time) (Date, error) {
	days := c.DaysSinceEpoch(t)
	year, month, day, err := c.fromDays(days)
	if err != nil {
		return Date{}, err
	}
	return Date{
		conv:  c,
		year:  year,
		month: month,
		day:   day,
		days:  days,
		when:  t.In(c.loc),
	}, nil
}

// Now returns the Date for the current time.
func (c *Converter) Now() (Date, error) {
	return c.FromTime(time.Now())
}

// FromUnixMilli returns the Date for the time that is ms milliseconds
// since the Unix epoch.
func (c *Converter) FromUnixMilli(ms int64) (Date, error) {
	return c.FromTime(time.UnixMilli(ms))
}

// New returns the Date for the BS year, 0-indexed month and day. The
// Gregorian time is midnight of that day. Months outside of 0-11 are
// folded into the year as per ToGregorian.
func (c *Converter) New(year, month, day int) (Date, error) {
	days, err := c.toDays(year, month, day)
	if err != nil {
		return Date{}, err
	}
	year, month, day, err = c.fromDays(days)
	if err != nil {
		return Date{}, err
	}
	return Date{
		conv:  c,
		year:  year,
		month: month,
		day:   day,
		days:  days,
		when:  c.dateAt(days),
	}, nil
}

// Parse returns the Date for a string accepted by Table.Parse.
func (c *Converter) Parse(val string) (Date, error) {
	year, month, day, err := c.table.Parse(val)
	if err != nil {
		return Date{}, err
	}
	return c.New(year, month, day)
}

// FromValue creates a Date from any of the values supported by the other
// constructors:
//
//	nil                 the current time, as per Now
//	time.Time           as per FromTime
//	Date, *Date         a copy of the Date
//	int64, int          milliseconds since the Unix epoch, as per FromUnixMilli
//	string              as per Parse
//	[3]int, []int       year, 0-indexed month and day as per New
//
// ErrInvalidArgument is returned for all other values.
func (c *Converter) FromValue(v any) (Date, error) {
	switch v := v.(type) {
	case nil:
		return c.Now()
	case time.Time:
		return c.FromTime(v)
	case Date:
		return v, nil
	case *Date:
		if v == nil {
			return Date{}, fmt.Errorf("nil *Date: %w", ErrInvalidArgument)
		}
		return *v, nil
	case int64:
		return c.FromUnixMilli(v)
	case int:
		return c.FromUnixMilli(int64(v))
	case string:
		return c.Parse(v)
	case [3]int:
		return c.New(v[0], v[1], v[2])
	case []int:
		if len(v) != 3 {
			return Date{}, fmt.Errorf("expected year, month and day, got %d values: %w", len(v), ErrInvalidArgument)
		}
		return c.New(v[0], v[1], v[2])
	}
	return Date{}, fmt.Errorf("unsupported type %T: %w", v, ErrInvalidArgument)
}

// Now is like Converter.Now for the default converter.
func Now() (Date, error) {
	return defaultConverter.Now()
}

// FromTime is like Converter.FromTime for the default converter.
func FromTime(t time.Time) (Date, error) {
	return defaultConverter.FromTime(t)
}

// FromUnixMilli is like Converter.FromUnixMilli for the default converter.
func FromUnixMilli(ms int64) (Date, error) {
	return defaultConverter.FromUnixMilli(ms)
}

// New is like Converter.New for the default converter.
func New(year, month, day int) (Date, error) {
	return defaultConverter.New(year, month, day)
}

// Parse is like Converter.Parse for the default converter.
func Parse(val string) (Date, error) {
	return defaultConverter.Parse(val)
}

// FromValue is like Converter.FromValue for the default converter.
func FromValue(v any) (Date, error) {
	return defaultConverter.FromValue(v)
}

// MinTime returns the first day supported by the default converter.
func MinTime() time.Time {
	return defaultConverter.Min()
}

// MaxTime returns the last day supported by the default converter.
func MaxTime() time.Time {
	return defaultConverter.Max()
}

// IsZero returns true for the zero Date.
func (d Date) IsZero() bool {
	return d.conv == nil
}

// Year returns the BS year.
func (d Date) Year() int {
	return d.year
}

// Month returns the 0-indexed BS month.
func (d Date) Month() int {
	return d.month
}

// Day returns the day of the BS month, starting at 1.
func (d Date) Day() int {
	return d.day
}

func (d Date) Weekday() time.Weekday {
	return d.when.Weekday()
}

func (d Date) Hour() int {
	return d.when.Hour()
}

func (d Date) Minute() int {
	return d.when.Minute()
}

func (d Date) Second() int {
	return d.when.Second()
}

func (d Date) Millisecond() int {
	return d.when.Nanosecond() / int(time.Millisecond)
}

// Time returns the Gregorian time for d.
func (d Date) Time() time.Time {
	return d.when
}

// UnixMilli returns the Gregorian time for d as milliseconds since the
// Unix epoch.
func (d Date) UnixMilli() int64 {
	return d.when.UnixMilli()
}

// DaysSinceEpoch returns the number of days between the first day of the
// table and d.
func (d Date) DaysSinceEpoch() int {
	return d.days
}

// Gregorian returns the Gregorian calendar date for d.
func (d Date) Gregorian() datetime.CalendarDate {
	y, m, dd := d.when.Date()
	return datetime.CalendarDate{Year: y, Month: datetime.Month(m), Day: dd}
}

// Equal returns true if d and o refer to the same instant.
func (d Date) Equal(o Date) bool {
	return d.when.Equal(o.when)
}

// String returns d in yyyy-mm-dd format.
func (d Date) String() string {
	return d.Format("YYYY-MM-DD")
}

func (d Date) with(year, month, day int) (Date, error) {
	if d.conv == nil {
		return Date{}, fmt.Errorf("zero Date: %w", ErrInvalidArgument)
	}
	return d.conv.New(year, month, day)
}

// WithYear returns a new Date for the same month and day in year.
func (d Date) WithYear(year int) (Date, error) {
	return d.with(year, d.month, d.day)
}

// WithMonth returns a new Date for the same year and day in the 0-indexed
// month. Month 12 refers to the first month of the following year and -1
// to the last month of the previous year.
func (d Date) WithMonth(month int) (Date, error) {
	return d.with(d.year, month, d.day)
}

// WithDay returns a new Date for the same year and month on day.
func (d Date) WithDay(day int) (Date, error) {
	return d.with(d.year, d.month, day)
}
