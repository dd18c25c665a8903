// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import "fmt"

var monthNames = []string{
	"Baisakh", "Jestha", "Asar", "Shrawan", "Bhadra", "Aswin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

// MonthName returns the name of the 0-indexed month, eg. Baisakh for 0.
// Months outside of 0-11 are folded as per Converter.ToGregorian.
func MonthName(month int) string {
	_, m := floorDiv(month, 12)
	return monthNames[m]
}

// MonthName returns the name of d's month.
func (d Date) MonthName() string {
	return monthNames[d.month]
}

// Long returns d in the form "Shrawan 7, 2082".
func (d Date) Long() string {
	return fmt.Sprintf("%s %d, %d", d.MonthName(), d.day, d.year)
}

// LongWithTime returns d in the form "Shrawan 7, 2082 14:30" using a
// 24 hour clock.
func (d Date) LongWithTime() string {
	return fmt.Sprintf("%s %02d:%02d", d.Long(), d.when.Hour(), d.when.Minute())
}
