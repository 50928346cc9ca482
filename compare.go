// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import "cmp"

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as or after o.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.year, o.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, o.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, o.day)
}

// Before returns true if d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After returns true if d is later than o.
func (d Date) After(o Date) bool {
	return o.Before(d)
}

// Equal returns true if neither date is before the other.
func (d Date) Equal(o Date) bool {
	return !d.Before(o) && !o.Before(d)
}

// Compare is the package level equivalent of a.Compare(b) for use
// with the slices package.
func Compare(a, b Date) int {
	return a.Compare(b)
}

// Min returns the earliest of the supplied dates, or the zero value
// if none are supplied.
func Min(dates ...Date) Date {
	if len(dates) == 0 {
		return Date{}
	}
	m := dates[0]
	for _, d := range dates[1:] {
		if d.Before(m) {
			m = d
		}
	}
	return m
}

// Max returns the latest of the supplied dates, or the zero value
// if none are supplied.
func Max(dates ...Date) Date {
	if len(dates) == 0 {
		return Date{}
	}
	m := dates[0]
	for _, d := range dates[1:] {
		if d.After(m) {
			m = d
		}
	}
	return m
}
