package main

import (
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"datepicker/internal/cli"
	"datepicker/internal/utils"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [value]",
		Short: "Evaluate a value against the allowed dates",
		Long: `Show how the picker would treat a value: whether it is inside the allowed
dates, whether every date is entered, and which month the calendar opens on.

With --strict the command fails when the value is out of range.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.loadApp()
			if err != nil {
				return err
			}

			text := ""
			if len(args) > 0 {
				text = args[0]
			}
			res, err := a.Check(text)
			if err != nil {
				return err
			}

			if err := utils.Output(flags.output, res, func(w io.Writer) error {
				return cli.PrintCheck(w, res)
			}); err != nil {
				return err
			}

			if strict && !res.Valid {
				return errOutOfRange(text, res.BoundsMessage)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the value is out of range")
	return cmd
}

func newQuartersCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "quarters [year]",
		Short: "List the quarter shortcuts of a year",
		Long:  "List the quarters of a year that overlap the allowed dates. Defaults to the current year.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.loadApp()
			if err != nil {
				return err
			}

			year, err := parseYear(args, time.Now())
			if err != nil {
				return err
			}

			quarters := a.Quarters(year)
			return utils.Output(flags.output, quarters, func(w io.Writer) error {
				return cli.PrintQuarters(w, year, quarters)
			})
		},
	}
}

// parseYear returns the year argument, or now's year when it is absent
func parseYear(args []string, now time.Time) (int, error) {
	if len(args) == 0 {
		return now.Year(), nil
	}
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1 || year > 9999 {
		return 0, errInvalidYear(args[0])
	}
	return year, nil
}
