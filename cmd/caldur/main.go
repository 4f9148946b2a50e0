// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command caldur prints calendar durations between dates, that is,
// elapsed time broken down into whole years, months and days with the
// actual lengths of the months and years spanned taken into account.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/caldur"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

var (
	cmdSet *subcmd.CommandSet
	stdout io.Writer = os.Stdout
)

type outputFlags struct {
	Plain bool `subcmd:"plain,false,print the duration without the direction suffix"`
}

func init() {
	betweenCmd := subcmd.NewCommand("between",
		subcmd.MustRegisterFlagStruct(&outputFlags{}, nil, nil),
		between, subcmd.ExactlyNumArguments(2))
	betweenCmd.Document("print the calendar duration between two dates, the direction being that of the first date relative to the second", "<date> <date>")

	sinceCmd := subcmd.NewCommand("since",
		subcmd.MustRegisterFlagStruct(&outputFlags{}, nil, nil),
		fromToday, subcmd.ExactlyNumArguments(1))
	sinceCmd.Document("print the calendar duration that has elapsed since the given date", "<date>")

	untilCmd := subcmd.NewCommand("until",
		subcmd.MustRegisterFlagStruct(&outputFlags{}, nil, nil),
		fromToday, subcmd.ExactlyNumArguments(1))
	untilCmd.Document("print the calendar duration remaining until the given date", "<date>")

	batchCmd := subcmd.NewCommand("batch",
		subcmd.MustRegisterFlagStruct(&outputFlags{}, nil, nil),
		batch, subcmd.ExactlyNumArguments(1))
	batchCmd.Document("print the calendar duration for every from/to pair in a yaml file", "<file>")

	cmdSet = subcmd.NewCommandSet(betweenCmd, sinceCmd, untilCmd, batchCmd)
	cmdSet.Document(`compute calendar durations between dates.

Dates may be specified as 2006-01-02, Jan-02-2006 or 01/02/2006.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func render(d caldur.Duration, plain bool) string {
	if plain {
		return d.Magnitude()
	}
	return d.String()
}

func parseDate(arg string) (caldur.CalendarDate, error) {
	var cd caldur.CalendarDate
	if err := cd.Parse(arg); err != nil {
		return 0, err
	}
	return cd, nil
}

func between(_ context.Context, values any, args []string) error {
	fv := values.(*outputFlags)
	errs := &errors.M{}
	a, err := parseDate(args[0])
	errs.Append(err)
	b, err := parseDate(args[1])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	fmt.Fprintln(stdout, render(caldur.Between(a, b), fv.Plain))
	return nil
}

func fromToday(_ context.Context, values any, args []string) error {
	fv := values.(*outputFlags)
	when, err := parseDate(args[0])
	if err != nil {
		return err
	}
	today := caldur.CalendarDateFromTime(time.Now())
	fmt.Fprintln(stdout, render(caldur.Between(today, when), fv.Plain))
	return nil
}

type batchDate struct {
	caldur.CalendarDate
}

func (bd *batchDate) UnmarshalYAML(value *yaml.Node) error {
	return bd.CalendarDate.Parse(value.Value)
}

type batchEntry struct {
	From batchDate `yaml:"from"`
	To   batchDate `yaml:"to"`
}

func batch(ctx context.Context, values any, args []string) error {
	fv := values.(*outputFlags)
	var entries []batchEntry
	if err := cmdyaml.ParseConfigFile(ctx, args[0], &entries); err != nil {
		return err
	}
	for _, entry := range entries {
		d := caldur.Between(entry.From.CalendarDate, entry.To.CalendarDate)
		fmt.Fprintf(stdout, "%v to %v: %v\n", entry.From, entry.To, render(d, fv.Plain))
	}
	return nil
}
