// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import "fmt"

// InvalidYearError indicates a year before year 1.
type InvalidYearError struct {
	Year int
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("invalid year: %d", e.Year)
}

// InvalidMonthError indicates a month outside of the range 1-12.
type InvalidMonthError struct {
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month: %d", e.Month)
}

// InvalidDayError indicates a day outside of the valid range for its
// month and year. Days records the number of days in that month.
type InvalidDayError struct {
	Year  int
	Month Month
	Day   int
	Days  int
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("invalid day for %d/%d: %d, expected 1..%d", int(e.Month), e.Year, e.Day, e.Days)
}

// InvalidDayOfYearError indicates an ordinal day outside of the valid
// range for its year. Days records the number of days in that year.
type InvalidDayOfYearError struct {
	Year int
	Day  int
	Days int
}

func (e *InvalidDayOfYearError) Error() string {
	return fmt.Sprintf("invalid day of year for %d: %d, expected 1..%d", e.Year, e.Day, e.Days)
}
