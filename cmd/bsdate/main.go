// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command bsdate converts dates between the Bikram Sambat and Gregorian
// calendars. Errors are printed to stdout, in keeping with the
// conversion output, and result in a non-zero exit status.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: bsdate
summary: convert dates between the Bikram Sambat (BS) and Gregorian (AD) calendars
commands:
  - name: bs2ad
    summary: print the Gregorian date, as yyyy-mm-dd, for a BS date or for today
    arguments:
      - "[bs-date]"
  - name: ad2bs
    summary: print the BS date for a Gregorian date, yyyy-mm-dd, or for today
    arguments:
      - "[ad-date]"
  - name: cal
    summary: display a BS month, yyyy-mm, or the current month
    arguments:
      - "[bs-year-month]"
  - name: range
    summary: display the range of dates supported
`

var stdout io.Writer = os.Stdout

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(commands)
	cmdSet.Set("bs2ad").MustRunnerAndFlags(bs2ad,
		subcmd.MustRegisteredFlagSet(&bs2adFlags{}))
	cmdSet.Set("ad2bs").MustRunnerAndFlags(ad2bs,
		subcmd.MustRegisteredFlagSet(&ad2bsFlags{}))
	cmdSet.Set("cal").MustRunnerAndFlags(cal,
		subcmd.MustRegisteredFlagSet(&calFlags{}))
	cmdSet.Set("range").MustRunnerAndFlags(showRange,
		subcmd.MustRegisteredFlagSet(&rangeFlags{}))
}

func main() {
	if err := cmdSet.Dispatch(context.Background()); err != nil {
		fmt.Fprintln(stdout, err)
		os.Exit(1)
	}
}
