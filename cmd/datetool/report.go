// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/adt/date"
	"cloudeng.io/cmdutil/cmdyaml"
)

type reportFlags struct {
	ConfigFile string `subcmd:"config,datetool.yml,yaml file containing the dates to report on"`
}

type reportConfig struct {
	Title string    `yaml:"title"`
	Dates date.List `yaml:"dates"`
}

func report(ctx context.Context, values interface{}, _ []string) error {
	fl := values.(*reportFlags)
	var cfg reportConfig
	if err := cmdyaml.ParseConfigFile(ctx, fl.ConfigFile, &cfg); err != nil {
		return err
	}
	if len(cfg.Title) > 0 {
		fmt.Fprintf(out, "%v\n", cfg.Title)
	}
	for _, d := range cfg.Dates.Sorted() {
		fmt.Fprintf(out, "%v: day %v of %v, leap year: %v\n", d, d.DayOfYear(), d.Year(), d.IsLeap())
	}
	return nil
}
