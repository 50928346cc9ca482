// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import "time"

// Weekday specifies a day of the week, Sunday = 0, as per time.Weekday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// String returns the English name of the day.
func (w Weekday) String() string {
	return time.Weekday(w).String()
}

// Time returns the equivalent time.Weekday.
func (w Weekday) Time() time.Weekday {
	return time.Weekday(w)
}

// Next returns the following day, Saturday wraps to Sunday.
func (w Weekday) Next() Weekday {
	return Weekday(mod(int(w)+1, 7))
}

// Prev returns the preceding day, Sunday wraps to Saturday.
func (w Weekday) Prev() Weekday {
	return Weekday(mod(int(w)-1, 7))
}

// Inc advances w to the following day and returns it.
func (w *Weekday) Inc() Weekday {
	*w = w.Next()
	return *w
}

// Dec moves w back to the preceding day and returns it.
func (w *Weekday) Dec() Weekday {
	*w = w.Prev()
	return *w
}

// PostInc advances w to the following day and returns its previous value.
func (w *Weekday) PostInc() Weekday {
	prev := *w
	*w = w.Next()
	return prev
}

// PostDec moves w back to the preceding day and returns its previous value.
func (w *Weekday) PostDec() Weekday {
	prev := *w
	*w = w.Prev()
	return prev
}
