// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const expectedDateFormats = "'20/05/2022' or 'Date(2022, 5, 20)'"

var constructorRe = regexp.MustCompile(`^Date\((-?\d+),\s*(-?\d+),\s*(-?\d+)\)$`)

// Parse parses a date in the compact 'DD/MM/YYYY' form produced by
// Date.String or the constructor form produced by Date.GoString, eg.
// 'Date(2022, 5, 20)', optionally prefixed with the package name. The
// parsed components are validated as per New.
func Parse(val string) (Date, error) {
	if len(val) == 0 {
		return Date{}, fmt.Errorf("empty value, expected %s", expectedDateFormats)
	}
	if m := constructorRe.FindStringSubmatch(strings.TrimPrefix(val, "date.")); m != nil {
		return newFromStrings(m[1], m[2], m[3])
	}
	parts := strings.Split(val, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q, expected %s", val, expectedDateFormats)
	}
	return newFromStrings(parts[2], parts[1], parts[0])
}

func newFromStrings(year, month, day string) (Date, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %s", year)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %s", month)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %s", day)
	}
	return New(y, Month(m), d)
}

// Parse parses val as per the package level Parse function.
func (d *Date) Parse(val string) error {
	date, err := Parse(val)
	if err != nil {
		return err
	}
	*d = date
	return nil
}
