// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var (
	cmdSet *subcmd.CommandSet
)

func init() {
	dayOfYearCmd := subcmd.NewCommand("dayofyear", subcmd.NewFlagSet(), dayOfYear)
	dayOfYearCmd.Document("print the ordinal day of the year for each date", "<date>...")

	leapCmd := subcmd.NewCommand("leap", subcmd.NewFlagSet(), leap)
	leapCmd.Document("report whether each year is a leap year", "<year>...")

	validateCmd := subcmd.NewCommand("validate", subcmd.NewFlagSet(), validate)
	validateCmd.Document("validate each date, reporting the first violated rule", "<date>...")

	compareCmd := subcmd.NewCommand("compare", subcmd.NewFlagSet(), compare, subcmd.ExactlyNumArguments(2))
	compareCmd.Document("compare two dates", "<date> <date>")

	reportFlagSet := subcmd.NewFlagSet()
	reportFlagSet.MustRegisterFlagStruct(&reportFlags{}, nil, nil)
	reportCmd := subcmd.NewCommand("report", reportFlagSet, report, subcmd.WithoutArguments())
	reportCmd.Document("print day-of-year and leap year information for the dates in a yaml config file")

	cmdSet = subcmd.NewCommandSet(compareCmd, dayOfYearCmd, leapCmd, reportCmd, validateCmd)
	cmdSet.Document("inspect and compare calendar dates")
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
