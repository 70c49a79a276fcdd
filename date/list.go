// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import (
	"slices"
	"strings"

	"cloudeng.io/errors"
)

// List represents a list of Dates.
type List []Date

// Parse a comma separated list of dates, each in any of the forms
// accepted by Date.Parse. Every entry is parsed and the returned error
// wraps all of the failures encountered, not just the first. The
// receiver is left unchanged on error.
func (dl *List) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(List, 0, len(parts))
	errs := &errors.M{}
	for _, part := range parts {
		var date Date
		if err := date.Parse(strings.TrimSpace(part)); err != nil {
			errs.Append(err)
			continue
		}
		d = append(d, date)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*dl = d
	return nil
}

func (dl List) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if the list contains d.
func (dl List) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

// Sorted returns a copy of the list in ascending date order.
func (dl List) Sorted() List {
	s := slices.Clone(dl)
	slices.SortFunc(s, Date.Compare)
	return s
}
