// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/adt/date"
	"cloudeng.io/errors"
)

// Overridden by the tests.
var out io.Writer = os.Stdout

func dayOfYear(_ context.Context, _ interface{}, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		d, err := date.Parse(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintf(out, "%v: day %v of %v\n", d, d.DayOfYear(), d.Year())
	}
	return errs.Err()
}

func leap(_ context.Context, _ interface{}, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		year, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(fmt.Errorf("invalid year: %v", arg))
			continue
		}
		fmt.Fprintf(out, "%v: leap year: %v\n", year, date.IsLeap(year))
	}
	return errs.Err()
}

func validate(_ context.Context, _ interface{}, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		d, err := date.Parse(arg)
		if err != nil {
			fmt.Fprintf(out, "%v: invalid: %v\n", arg, err)
			errs.Append(err)
			continue
		}
		fmt.Fprintf(out, "%v: valid\n", d)
	}
	return errs.Err()
}

func compare(_ context.Context, _ interface{}, args []string) error {
	a, err := date.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := date.Parse(args[1])
	if err != nil {
		return err
	}
	relation := "="
	switch a.Compare(b) {
	case -1:
		relation = "<"
	case 1:
		relation = ">"
	}
	fmt.Fprintf(out, "%v %s %v\n", a, relation, b)
	return nil
}
