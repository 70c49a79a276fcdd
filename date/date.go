// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package date provides a validated, immutable representation of a
// proleptic Gregorian calendar date together with leap year and
// day-of-year calculations.
package date

import (
	"fmt"
	"time"
)

// Month as an int. It prints as the English month name.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// Date represents a calendar date with a year, month and day. The zero
// value is not a valid date; use New, Parse or FromDayOfYear to construct
// one. Every Date obtained through this package denotes a real calendar
// day and is immutable, hence Dates may be shared freely across
// goroutines without synchronization.
type Date struct {
	year  int
	month Month
	day   int
}

// New returns the Date for the given year, month and day. The components
// are validated in order, year (>= 1), then month (1-12), then day
// (1 to DaysInMonth(year, month)), and the first violated rule determines
// the returned error: one of *InvalidYearError, *InvalidMonthError or
// *InvalidDayError.
func New(year int, month Month, day int) (Date, error) {
	if year < 1 {
		return Date{}, &InvalidYearError{Year: year}
	}
	if month < 1 || month > 12 {
		return Date{}, &InvalidMonthError{Month: int(month)}
	}
	if n := DaysInMonth(year, month); day < 1 || day > n {
		return Date{}, &InvalidDayError{Year: year, Month: month, Day: day, Days: n}
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is like New but panics on an invalid date. Its use is
// encouraged from within init functions and tests only.
func MustNew(year int, month Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Year returns the year.
func (d Date) Year() int {
	return d.year
}

// Month returns the month.
func (d Date) Month() Month {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// IsLeap returns true if the date's year is a leap year.
func (d Date) IsLeap() bool {
	return IsLeap(d.year)
}

// DayOfYear returns the day of the year as 1-365 for non-leap years and
// 1-366 for leap years, with 1 being Jan 1st.
func (d Date) DayOfYear() int {
	if IsLeap(d.year) {
		return dayOfYearLeap[d.month-1] + d.day
	}
	return dayOfYear[d.month-1] + d.day
}

// Compare returns -1 if d is before other, 0 if they are the same date
// and 1 if d is after other. Dates are ordered by year, then month, then
// day.
func (d Date) Compare(other Date) int {
	if d.year != other.year {
		if d.year < other.year {
			return -1
		}
		return 1
	}
	if d.month != other.month {
		if d.month < other.month {
			return -1
		}
		return 1
	}
	if d.day != other.day {
		if d.day < other.day {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After returns true if d is after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Equal returns true if d and other are the same date.
func (d Date) Equal(other Date) bool {
	return d == other
}

// String returns the date in compact 'DD/MM/YYYY' form with zero padded
// day and month, eg. '20/05/2022'.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.day, int(d.month), d.year)
}

// GoString returns the date in constructor form, eg. 'Date(2022, 5, 20)'.
// Parse accepts this form, so the output of GoString can be used to
// reconstruct an equal Date.
func (d Date) GoString() string {
	return fmt.Sprintf("Date(%d, %d, %d)", d.year, int(d.month), d.day)
}
