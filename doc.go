// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bsdate provides support for converting dates between the
// Gregorian calendar and the Bikram Sambat (BS) calendar used in Nepal,
// and for formatting BS dates.
//
// BS month lengths are not computable by formula, so conversion is driven
// by a Table of month lengths per BS year and day-count arithmetic
// relative to a fixed Gregorian epoch (1943-04-14 for BS 2000-01-01 in the
// default table). Months are 0-indexed throughout the API, matching
// time.Month-1, whereas parsed and formatted strings use 1-indexed months:
//
//	d, err := bsdate.Parse("2075-12-25")
//	...
//	d.Month()                 // 11
//	d.Gregorian()             // 2019-04-08
//	d.Format("YYYY/MM/DD")    // 2075/12/25
//
// The day boundary used when converting a time.Time is set by the
// Converter's location, UTC by default, rather than by the host's local
// time zone.
package bsdate
