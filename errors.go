// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidField is returned, wrapped in a *FieldError, when a day,
	// month or year is outside of its allowed range.
	ErrInvalidField = errors.New("invalid date field")

	// ErrInvalidTimestamp is returned when a timestamp cannot be
	// decomposed into a valid Date.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrSyntax is returned when text cannot be read as a date at all.
	ErrSyntax = errors.New("malformed date")
)

// Field identifies one of the components of a Date.
type Field int

const (
	DayField Field = iota
	MonthField
	YearField
)

func (f Field) String() string {
	switch f {
	case DayField:
		return "day"
	case MonthField:
		return "month"
	case YearField:
		return "year"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// FieldError describes a field value that violates the range for that field.
// A Max of zero indicates that there is no upper bound, in which case Min
// is an exclusive lower bound.
type FieldError struct {
	Field    Field
	Value    int
	Min, Max int
}

// Error implements error.
func (e *FieldError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("invalid %v: %d (must be > %d)", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("invalid %v: %d (must be %d..%d)", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap returns ErrInvalidField.
func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

func syntaxError(val, msg string) error {
	return fmt.Errorf("%w: %q: %s", ErrSyntax, val, msg)
}

var errYearRange = errors.New("year out of range")

func timestampError(secs int64, cause error) error {
	return fmt.Errorf("%w: %d: %w", ErrInvalidTimestamp, secs, cause)
}
