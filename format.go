// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"strconv"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

const expectedFormat = "DD/MM/YYYY"

// String returns d formatted as DD/MM/YYYY. The day and month are zero
// padded to two digits and the year is printed with as many digits as
// it requires.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.Day(), d.Month(), d.Year())
}

// Format returns d formatted as DD/MM/YYYY, the same as String.
func (d Date) Format() string {
	return d.String()
}

// ParseUnchecked reads a date from the fixed width format DD/MM/YYYY,
// taking the day from offsets [0,2), the month from [3,5) and the year
// from [6,10). The separators are not examined and the resulting fields
// are not validated, use Parse for untrusted input or Validate to check
// the result. An error is returned only if the fields are not numbers.
func ParseUnchecked(val string) (Date, error) {
	if len(val) < 7 {
		return Date{}, syntaxError(val, "expected "+expectedFormat)
	}
	day, month, year, err := atoiFields(val, val[6:min(len(val), 10)])
	if err != nil {
		return Date{}, err
	}
	return newDate(day, month, year), nil
}

func atoiFields(val, yearField string) (day, month, year int, err error) {
	if day, err = strconv.Atoi(val[0:2]); err != nil {
		return 0, 0, 0, syntaxError(val, "invalid day")
	}
	if month, err = strconv.Atoi(val[3:5]); err != nil {
		return 0, 0, 0, syntaxError(val, "invalid month")
	}
	if year, err = strconv.Atoi(yearField); err != nil {
		return 0, 0, 0, syntaxError(val, "invalid year")
	}
	return
}

// Parse parses a date in the format DD/MM/YYYY, the year may have more
// than four digits. All syntax errors are reported, after which the
// fields are validated as per New.
func Parse(val string) (Date, error) {
	if len(val) < 7 {
		return Date{}, syntaxError(val, "expected "+expectedFormat)
	}
	errs := &errors.M{}
	for _, i := range []int{2, 5} {
		if val[i] != '/' {
			errs.Append(syntaxError(val, fmt.Sprintf("expected '/' at offset %d", i)))
		}
	}
	day, err := parseDigits(val, DayField, val[0:2])
	errs.Append(err)
	month, err := parseDigits(val, MonthField, val[3:5])
	errs.Append(err)
	year, err := parseDigits(val, YearField, val[6:])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return Date{}, err
	}
	return New(day, month, year)
}

// MustParse is like Parse but panics on error.
func MustParse(val string) Date {
	d, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}

func parseDigits(val string, field Field, digits string) (int, error) {
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, syntaxError(val, fmt.Sprintf("%v contains a non-digit", field))
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, syntaxError(val, fmt.Sprintf("invalid %v: %v", field, err))
	}
	return n, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Date) UnmarshalText(text []byte) error {
	nd, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using Parse.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar value, expected %s", value.Line, expectedFormat)
	}
	nd, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = nd
	return nil
}

// Scan implements fmt.Scanner. It reads a single space delimited token
// taking the day from offsets [0,2), the month from [3,5) and the year
// from the remainder, which may be more than four digits. The separators
// are not examined, the fields are applied using Set.
func (d *Date) Scan(state fmt.ScanState, _ rune) error {
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	val := string(tok)
	if len(val) < 7 {
		return syntaxError(val, "expected "+expectedFormat)
	}
	day, month, year, err := atoiFields(val, val[6:])
	if err != nil {
		return err
	}
	return d.Set(day, month, year)
}
