// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import (
	"fmt"
	"strconv"
	"strings"
)

// formatTokens is ordered longest first for each letter so that, for
// example, YYYY is never consumed as two instances of YY.
var formatTokens = []string{"YYYY", "YY", "MM", "M", "DD", "D"}

// Format renders d according to pattern. The following tokens are
// replaced, all other text is copied unchanged:
//
//	YYYY  zero padded four digit year
//	YY    last two digits of the year
//	MM    zero padded two digit month, 01-12
//	M     month, 1-12
//	DD    zero padded two digit day
//	D     day
func Format(d Date, pattern string) string {
	return format(d.year, d.month+1, d.day, pattern)
}

// Format is equivalent to Format(d, pattern).
func (d Date) Format(pattern string) string {
	return Format(d, pattern)
}

func format(year, month, day int, pattern string) string {
	var out strings.Builder
	for len(pattern) > 0 {
		tok := ""
		for _, t := range formatTokens {
			if strings.HasPrefix(pattern, t) {
				tok = t
				break
			}
		}
		switch tok {
		case "YYYY":
			fmt.Fprintf(&out, "%04d", year)
		case "YY":
			y := strconv.Itoa(year)
			out.WriteString(y[max(len(y)-2, 0):])
		case "MM":
			fmt.Fprintf(&out, "%02d", month)
		case "M":
			out.WriteString(strconv.Itoa(month))
		case "DD":
			fmt.Fprintf(&out, "%02d", day)
		case "D":
			out.WriteString(strconv.Itoa(day))
		default:
			out.WriteByte(pattern[0])
			pattern = pattern[1:]
			continue
		}
		pattern = pattern[len(tok):]
	}
	return out.String()
}
