// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package caldate provides a calendar date value type, Date, with support
// for day based arithmetic, comparison, day-of-year and day-of-week
// computations and a fixed width DD/MM/YYYY text representation.
//
// A Date is always a valid Gregorian date with a year greater than 1900,
// with the exception of the zero value which represents 1 January 1900.
// Construction and mutation validate their arguments and return errors
// that wrap ErrInvalidField; arithmetic is total and does not re-apply
// the year floor.
package caldate

import (
	"math"
	"time"
)

const (
	// BaseYear is the year of the zero value Date. Valid years must be
	// greater than BaseYear.
	BaseYear = 1900

	// RandMinYear and RandMaxYear bound the years generated by Random.
	RandMinYear = 1940
	RandMaxYear = 2020
)

// Date represents a calendar day as a day, month and year. The zero value
// is 1 January 1900. Dates are comparable with == and are safe to copy.
type Date struct {
	// offsets from 1/1/BaseYear so that the zero value is valid.
	day, month, year int
}

func newDate(day, month, year int) Date {
	return Date{day: day - 1, month: month - 1, year: year - BaseYear}
}

// Default returns 1 January 1900, the zero value of Date.
func Default() Date {
	return Date{}
}

// New returns the Date for the given day, month and year. The year
// is validated first, then the day and then the month.
func New(day, month, year int) (Date, error) {
	if err := validateYear(year); err != nil {
		return Date{}, err
	}
	if err := validateDay(day, month, year); err != nil {
		return Date{}, err
	}
	if err := validateMonth(month); err != nil {
		return Date{}, err
	}
	return newDate(day, month, year), nil
}

// MustNew is like New but panics on error.
func MustNew(day, month, year int) Date {
	d, err := New(day, month, year)
	if err != nil {
		panic(err)
	}
	return d
}

// FromUnix returns the Date containing the instant secs seconds after
// the Unix epoch, interpreted in UTC.
func FromUnix(secs int64) (Date, error) {
	year, month, day := time.Unix(secs, 0).UTC().Date()
	if tmYear := int64(year) - BaseYear; tmYear > math.MaxInt32 || tmYear < math.MinInt32 {
		return Date{}, timestampError(secs, errYearRange)
	}
	d, err := New(day, int(month), year)
	if err != nil {
		return Date{}, timestampError(secs, err)
	}
	return d, nil
}

// FromTime returns the Date of t in UTC.
func FromTime(t time.Time) (Date, error) {
	return FromUnix(t.Unix())
}

// Day returns the day of the month, 1-31.
func (d Date) Day() int {
	return d.day + 1
}

// Month returns the month, 1-12.
func (d Date) Month() int {
	return d.month + 1
}

// Year returns the year.
func (d Date) Year() int {
	return d.year + BaseYear
}

// Date returns the day, month and year of d.
func (d Date) Date() (day, month, year int) {
	return d.Day(), d.Month(), d.Year()
}

// YearDay returns the day of the year, 1-365 for non-leap years and 1-366
// for leap years.
func (d Date) YearDay() int {
	return yearDay(d.Day(), d.Month(), d.Year())
}

// Weekday returns the day of the week.
func (d Date) Weekday() Weekday {
	return weekday(d.Day(), d.Month(), d.Year())
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate returns an error if d does not satisfy the range constraints
// on its fields. Only dates created by ParseUnchecked can fail.
func (d Date) Validate() error {
	if d == (Date{}) {
		return nil
	}
	_, err := New(d.Day(), d.Month(), d.Year())
	return err
}

// SetDay sets the day of the month. The day must be valid for the
// current month and year.
func (d *Date) SetDay(day int) error {
	if err := validateDay(day, d.Month(), d.Year()); err != nil {
		return err
	}
	d.day = day - 1
	return nil
}

// SetMonth sets the month. The current day must be valid for the new
// month in the current year.
func (d *Date) SetMonth(month int) error {
	if err := validateMonth(month); err != nil {
		return err
	}
	if err := validateDay(d.Day(), month, d.Year()); err != nil {
		return err
	}
	d.month = month - 1
	return nil
}

// SetYear sets the year. The current day and month must be valid for
// the new year, ie. 29 February requires a leap year.
func (d *Date) SetYear(year int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	if err := validateDay(d.Day(), d.Month(), year); err != nil {
		return err
	}
	d.year = year - BaseYear
	return nil
}

// Set sets all three fields. The year is validated first, then the month
// and finally the day against the new month and year. d is unchanged
// if an error is returned.
func (d *Date) Set(day, month, year int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	if err := validateMonth(month); err != nil {
		return err
	}
	if err := validateDay(day, month, year); err != nil {
		return err
	}
	*d = newDate(day, month, year)
	return nil
}

func validateYear(year int) error {
	if year <= BaseYear {
		return &FieldError{Field: YearField, Value: year, Min: BaseYear}
	}
	return nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return &FieldError{Field: MonthField, Value: month, Min: 1, Max: 12}
	}
	return nil
}

// validateDay validates day against month and year. If month is itself
// out of range the day is checked against the longest month.
func validateDay(day, month, year int) error {
	last := 31
	if month >= 1 && month <= 12 {
		last = DaysInMonth(year, month)
	}
	if day < 1 || day > last {
		return &FieldError{Field: DayField, Value: day, Min: 1, Max: last}
	}
	return nil
}
