// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

// Ordinal returns the number of days from day zero, 1 January of year 1,
// to d.
func (d Date) Ordinal() int {
	return DaysFromEpoch(d.Year()) + d.YearDay() - 1
}

// FromOrdinal returns the Date that is the given number of days after
// day zero, 1 January of year 1. Negative values give dates in the
// proleptic Gregorian calendar before year 1.
func FromOrdinal(days int) Date {
	year := yearFromDays(days)
	surplus := days - DaysFromEpoch(year)
	month := 1
	for ; month < 13 && surplus >= DaysInMonth(year, month); month++ {
		surplus -= DaysInMonth(year, month)
	}
	if month == 13 {
		year++
		month = 1
	}
	return newDate(surplus+1, month, year)
}

// AddDays returns the date n days after d, n may be negative. The year
// floor is not applied, so the result may lie before BaseYear or even
// before year 1, but its day and month are always valid for its year.
func (d Date) AddDays(n int) Date {
	if n == 0 {
		return d
	}
	return FromOrdinal(d.Ordinal() + n)
}

// SubDays returns the date n days before d, n may be negative.
func (d Date) SubDays(n int) Date {
	return d.AddDays(-n)
}

// Sub returns the signed number of days from o to d, it is negative
// when d is earlier than o.
func (d Date) Sub(o Date) int {
	return d.Ordinal() - o.Ordinal()
}

// AddDays returns d.AddDays(n).
func AddDays(n int, d Date) Date {
	return d.AddDays(n)
}

// Advance moves d forward by n days, as per AddDays, and returns d.
func (d *Date) Advance(n int) *Date {
	*d = d.AddDays(n)
	return d
}

// Retreat moves d back by n days and returns d.
func (d *Date) Retreat(n int) *Date {
	*d = d.SubDays(n)
	return d
}

// Inc moves d to the following day and returns d.
func (d *Date) Inc() *Date {
	return d.Advance(1)
}

// Dec moves d to the preceding day and returns d.
func (d *Date) Dec() *Date {
	return d.Retreat(1)
}

// PostInc moves d to the following day and returns the value of d
// prior to the move.
func (d *Date) PostInc() Date {
	prev := *d
	d.Inc()
	return prev
}

// PostDec moves d to the preceding day and returns the value of d
// prior to the move.
func (d *Date) PostDec() Date {
	prev := *d
	d.Dec()
	return prev
}
