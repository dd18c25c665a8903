// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/bsdate"
	"cloudeng.io/datetime"
)

func utc(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestConversions(t *testing.T) {
	conv := bsdate.DefaultConverter()
	for _, tc := range []struct {
		year, month, day int
		ad               time.Time
		weekday          time.Weekday
	}{
		{2000, 0, 1, utc(1943, 4, 14), time.Wednesday},
		{2050, 5, 15, utc(1993, 10, 1), time.Friday},
		{2075, 11, 25, utc(2019, 4, 8), time.Monday},
		{2075, 11, 30, utc(2019, 4, 13), time.Saturday},
		{2076, 0, 1, utc(2019, 4, 14), time.Sunday},
		{2077, 11, 31, utc(2021, 4, 13), time.Tuesday},
		{2081, 0, 1, utc(2024, 4, 13), time.Saturday},
		{2090, 11, 30, utc(2034, 4, 13), time.Thursday},
	} {
		ad, err := conv.ToGregorian(tc.year, tc.month, tc.day)
		if err != nil {
			t.Errorf("%v-%v-%v: %v", tc.year, tc.month, tc.day, err)
			continue
		}
		if got, want := ad, tc.ad; !got.Equal(want) {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.year, tc.month, tc.day, got, want)
		}
		if got, want := ad.Weekday(), tc.weekday; got != want {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.year, tc.month, tc.day, got, want)
		}
		// The time of day must not affect the result.
		year, month, day, err := conv.ToBS(tc.ad.Add(23*time.Hour + 59*time.Minute))
		if err != nil {
			t.Errorf("%v: %v", tc.ad, err)
			continue
		}
		if year != tc.year || month != tc.month || day != tc.day {
			t.Errorf("%v: got %v-%v-%v, want %v-%v-%v", tc.ad, year, month, day, tc.year, tc.month, tc.day)
		}
	}
}

func TestRoundTripBS(t *testing.T) {
	conv := bsdate.DefaultConverter()
	tbl := conv.Table()
	lo, hi := tbl.YearRange()
	expected := 0
	for year := lo; year <= hi; year++ {
		for month := 1; month <= 12; month++ {
			n, _ := tbl.DaysInMonth(year, month)
			for day := 1; day <= n; day++ {
				ad, err := conv.ToGregorian(year, month-1, day)
				if err != nil {
					t.Fatalf("%v-%v-%v: %v", year, month, day, err)
				}
				if got, want := conv.DaysSinceEpoch(ad), expected; got != want {
					t.Fatalf("%v-%v-%v: got %v, want %v", year, month, day, got, want)
				}
				y, m, d, err := conv.ToBS(ad)
				if err != nil {
					t.Fatalf("%v: %v", ad, err)
				}
				if y != year || m != month-1 || d != day {
					t.Fatalf("%v: got %v-%v-%v, want %v-%v-%v", ad, y, m, d, year, month-1, day)
				}
				expected++
			}
		}
	}
	if got, want := expected, tbl.TotalDays(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRoundTripGregorian(t *testing.T) {
	conv := bsdate.DefaultConverter()
	py, pm, pd := 0, 0, 0
	for ad := conv.Min(); !ad.After(conv.Max()); ad = ad.AddDate(0, 0, 1) {
		y, m, d, err := conv.ToBS(ad)
		if err != nil {
			t.Fatalf("%v: %v", ad, err)
		}
		back, err := conv.ToGregorian(y, m, d)
		if err != nil {
			t.Fatalf("%v: %v", ad, err)
		}
		if !back.Equal(ad) {
			t.Fatalf("got %v, want %v", back, ad)
		}
		if py != 0 {
			// Each day advances the BS date by exactly one day.
			switch {
			case y == py && m == pm:
				if d != pd+1 {
					t.Fatalf("%v: day %v does not follow %v", ad, d, pd)
				}
			case y == py && m == pm+1, y == py+1 && m == 0 && pm == 11:
				n, _ := conv.Table().DaysInMonth(py, pm+1)
				if d != 1 || pd != n {
					t.Fatalf("%v: %v-%v-%v does not follow %v-%v-%v", ad, y, m, d, py, pm, pd)
				}
			default:
				t.Fatalf("%v: %v-%v-%v does not follow %v-%v-%v", ad, y, m, d, py, pm, pd)
			}
		}
		py, pm, pd = y, m, d
	}
}

func TestBoundaries(t *testing.T) {
	conv := bsdate.DefaultConverter()
	first, err := conv.ToGregorian(2000, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := first, conv.Min(); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := conv.Epoch(), bsdate.DefaultEpoch; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := first, utc(1943, 4, 14); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	last, err := conv.ToGregorian(2090, 11, 30)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := last, conv.Max(); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := bsdate.MaxTime(), conv.Max(); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := bsdate.MinTime(), conv.Min(); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, when := range []time.Time{
		first.AddDate(0, 0, -1),
		last.AddDate(0, 0, 1),
		utc(1900, 1, 1),
		utc(2100, 1, 1),
	} {
		if _, _, _, err := conv.ToBS(when); !errors.Is(err, bsdate.ErrOutOfRange) {
			t.Errorf("%v: unexpected or missing error: %v", when, err)
		}
	}

	for _, tc := range []struct {
		year, month, day int
	}{
		{1999, 11, 30},
		{2000, -1, 1},
		{2091, 0, 1},
		{2090, 12, 1},
		{2075, 11, 31},
		{2075, 11, 0},
		{2075, 0, -1},
	} {
		if _, err := conv.ToGregorian(tc.year, tc.month, tc.day); !errors.Is(err, bsdate.ErrOutOfRange) {
			t.Errorf("%v-%v-%v: unexpected or missing error: %v", tc.year, tc.month, tc.day, err)
		}
	}
}

func TestMonthOverflow(t *testing.T) {
	conv := bsdate.DefaultConverter()
	for _, tc := range []struct {
		year, month         int
		wantYear, wantMonth int
	}{
		{2075, 12, 2076, 0},
		{2075, -1, 2074, 11},
		{2075, 24, 2077, 0},
		{2075, -12, 2074, 0},
		{2075, -13, 2073, 11},
	} {
		got, err := conv.ToGregorian(tc.year, tc.month, 1)
		if err != nil {
			t.Errorf("%v-%v: %v", tc.year, tc.month, err)
			continue
		}
		want, err := conv.ToGregorian(tc.wantYear, tc.wantMonth, 1)
		if err != nil {
			t.Errorf("%v-%v: %v", tc.wantYear, tc.wantMonth, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%v-%v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
}

func TestLocation(t *testing.T) {
	npt := time.FixedZone("NPT", 5*60*60+45*60)
	conv, err := bsdate.NewConverter(bsdate.DefaultTable(), bsdate.WithLocation(npt))
	if err != nil {
		t.Fatal(err)
	}
	// 01:00 in Kathmandu is still the previous day in UTC.
	when := time.Date(2019, 4, 8, 1, 0, 0, 0, npt)

	_, _, day, err := conv.ToBS(when)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := day, 25; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	_, _, day, err = bsdate.DefaultConverter().ToBS(when)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := day, 24; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	ad, err := conv.ToGregorian(2075, 11, 25)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ad, time.Date(2019, 4, 8, 0, 0, 0, 0, npt); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ad.Location(), npt; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := conv.Location(), npt; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNewConverterErrors(t *testing.T) {
	if _, err := bsdate.NewConverter(nil); !errors.Is(err, bsdate.ErrInvalidArgument) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := bsdate.NewConverter(bsdate.DefaultTable(), bsdate.WithLocation(nil)); !errors.Is(err, bsdate.ErrInvalidArgument) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	bad := datetime.CalendarDate{Year: 1943, Month: 2, Day: 30}
	if _, err := bsdate.NewConverter(bsdate.DefaultTable(), bsdate.WithEpoch(bad)); !errors.Is(err, bsdate.ErrInvalidArgument) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestCustomTable(t *testing.T) {
	// A table whose years are longer than any in the default table to
	// exercise the year estimate.
	months := make([][12]int, 10)
	for i := range months {
		months[i] = [12]int{32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32}
	}
	conv, err := bsdate.NewConverter(bsdate.MustNewTable(1, months),
		bsdate.WithEpoch(datetime.CalendarDate{Year: 2000, Month: 1, Day: 1}))
	if err != nil {
		t.Fatal(err)
	}
	for days := 0; days < 10*384; days++ {
		ad := utc(2000, 1, 1+days)
		y, m, d, err := conv.ToBS(ad)
		if err != nil {
			t.Fatalf("%v: %v", ad, err)
		}
		if got, want := y, 1+days/384; got != want {
			t.Fatalf("%v: got %v, want %v", ad, got, want)
		}
		if got, want := m, (days%384)/32; got != want {
			t.Fatalf("%v: got %v, want %v", ad, got, want)
		}
		if got, want := d, days%32+1; got != want {
			t.Fatalf("%v: got %v, want %v", ad, got, want)
		}
	}
	date, err := conv.New(5, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := date.Format("YYYY"), "0005"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := date.Format("YY"), "5"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
