// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bsdate

import "errors"

var (
	// ErrParse is returned for date strings that are not three numeric
	// components separated by '-', '.' or '/'.
	ErrParse = errors.New("invalid date string")

	// ErrOutOfRange is returned for years outside of a Table, months
	// outside of 1-12 and days outside of the length of their month.
	ErrOutOfRange = errors.New("date out of range")

	// ErrInvalidArgument is returned for unsupported inputs to the
	// constructors, eg. a nil table or a value of an unsupported type.
	ErrInvalidArgument = errors.New("invalid argument")
)
