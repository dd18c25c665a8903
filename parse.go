// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"
	"strconv"
	"strings"
)

const expectedFormats = "yyyy-mm-dd, yyyy.mm.dd or yyyy/mm/dd"

func isDateSeparator(r rune) bool {
	return r == '-' || r == '.' || r == '/'
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// SplitDate splits val into exactly three numeric components separated
// by any of '-', '.' or '/'. No range checking is performed.
func SplitDate(val string) (a, b, c int, err error) {
	val = strings.TrimSpace(val)
	parts := strings.Split(strings.Map(func(r rune) rune {
		if isDateSeparator(r) {
			return '-'
		}
		return r
	}, val), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%q: expected %s: %w", val, expectedFormats, ErrParse)
	}
	var n [3]int
	for i, p := range parts {
		if !isDigits(p) {
			return 0, 0, 0, fmt.Errorf("%q: invalid number %q: %w", val, p, ErrParse)
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%q: invalid number %q: %w", val, p, ErrParse)
		}
		n[i] = v
	}
	return n[0], n[1], n[2], nil
}

// Parse parses a BS date in one of the formats yyyy-mm-dd, yyyy.mm.dd or
// yyyy/mm/dd and checks that it falls within the table. The month is
// 1-indexed in val but returned 0-indexed.
func (t *Table) Parse(val string) (year, month, day int, err error) {
	year, month, day, err = SplitDate(val)
	if err != nil {
		return 0, 0, 0, err
	}
	if _, err := t.index(year); err != nil {
		return 0, 0, 0, err
	}
	n, err := t.DaysInMonth(year, month)
	if err != nil {
		return 0, 0, 0, err
	}
	if day < 1 || day > n {
		return 0, 0, 0, fmt.Errorf("day %d is outside of 1-%d for %04d-%02d: %w", day, n, year, month, ErrOutOfRange)
	}
	return year, month - 1, day, nil
}

// ParseTriple is like Table.Parse for the default table.
func ParseTriple(val string) (year, month, day int, err error) {
	return defaultTable.Parse(val)
}
