// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

var (
	daysInMonth     []int // days in each month of a non-leap year
	daysInMonthLeap []int // days in each month of a leap year
	dayOfYear       []int // per month cumulative days preceding it, so [0, 31, 59 etc]
	dayOfYearLeap   []int // as above for leap years, so [0, 31, 60 etc]
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year, that is, a year
// divisible by 4 and not by 100, unless also divisible by 400.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// year. The month must be in the range 1-12; callers using DaysInMonth
// directly, rather than via New, are responsible for validating it.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// FromDayOfYear returns the Date with the given 1-based day of the year,
// the inverse of Date.DayOfYear. The year must be >= 1 and the day in the
// range 1 to DaysInYear(year); out of range values are rejected rather
// than clamped.
func FromDayOfYear(year, day int) (Date, error) {
	if year < 1 {
		return Date{}, &InvalidYearError{Year: year}
	}
	if day < 1 || day > DaysInYear(year) {
		return Date{}, &InvalidDayOfYearError{Year: year, Day: day, Days: DaysInYear(year)}
	}
	dm := daysInMonthForYear(year)
	for month := 0; month < 12; month++ {
		if day <= dm[month] {
			return Date{year: year, month: Month(month + 1), day: day}, nil
		}
		day -= dm[month]
	}
	panic("unreachable")
}
