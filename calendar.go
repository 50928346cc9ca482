// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

// monthLengths and monthStarts are indexed first by whether the year is
// a leap year. monthStarts[leap][m] is the number of days in the year
// before month m+1.
var (
	monthLengths = [2][12]int{
		{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
		{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	}
	monthStarts [2][12]int
)

const (
	daysPer400Years = 146097

	doomsdayMonth = 4
	doomsdayDay   = 4
)

func init() {
	for leap := range monthLengths {
		for m := 1; m < 12; m++ {
			monthStarts[leap][m] = monthStarts[leap][m-1] + monthLengths[leap][m-1]
		}
	}
}

func leapIndex(year int) int {
	if IsLeap(year) {
		return 1
	}
	return 0
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in the given month, 1-12,
// for the given year. It panics if month is out of range.
func DaysInMonth(year, month int) int {
	return monthLengths[leapIndex(year)][month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysFromEpoch returns the number of days from day zero, 1 January of
// year 1 in the proleptic Gregorian calendar, to 1 January of year. It is
// negative for years before 1.
func DaysFromEpoch(year int) int {
	year--
	return year*365 + floorDiv(year, 400) - floorDiv(year, 100) + floorDiv(year, 4)
}

// yearFromDays estimates the year containing the given ordinal day. The
// estimate is never too high and at most one year too low, which
// FromOrdinal corrects for by rolling over into the following year.
func yearFromDays(days int) int {
	return floorDiv(days*400, daysPer400Years) + 1
}

// floorDiv returns x/y rounded towards negative infinity, y must be
// positive.
func floorDiv(x, y int) int {
	q := x / y
	if x%y < 0 {
		q--
	}
	return q
}

func yearDay(day, month, year int) int {
	return monthStarts[leapIndex(year)][month-1] + day
}

// mod returns x modulo m in the range [0, m).
func mod(x, m int) int {
	return (x%m + m) % m
}

// anchorDay returns the doomsday anchor for the century containing year.
func anchorDay(year int) Weekday {
	switch mod(year-200, 400) / 100 {
	case 0:
		return Friday
	case 1:
		return Wednesday
	case 2:
		return Tuesday
	default:
		return Sunday
	}
}

// weekday computes the day of the week using the doomsday rule.
func weekday(day, month, year int) Weekday {
	td := mod(year, 100)
	c1 := td / 12
	c2 := td % 12
	c3 := c2 / 4
	doomsday := (c1 + c2 + c3 + int(anchorDay(year))) % 7
	diff := yearDay(day, month, year) - yearDay(doomsdayDay, doomsdayMonth, year)
	return Weekday(((diff % 7) + 7 + doomsday) % 7)
}
