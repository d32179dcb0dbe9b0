package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"datepicker/internal/app"
	"datepicker/internal/cli"
	"datepicker/internal/picker"
	"datepicker/internal/utils"
)

// pickResult is the machine-readable result of the pick command
type pickResult struct {
	Mode  string `json:"mode" yaml:"mode"`
	Value string `json:"value" yaml:"value"`
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
	Valid bool   `json:"valid" yaml:"valid"`
	Empty bool   `json:"empty" yaml:"empty"`
}

func newPickResult(s app.Settings, v picker.Value) pickResult {
	res := pickResult{
		Mode:  string(v.Mode),
		Value: v.Format(s.DateFormat),
		Valid: !picker.IsValueInvalid(v, picker.NormalizeBounds(s.MinDate, s.MaxDate)),
		Empty: v.IsEmpty(),
	}
	if v.Mode == picker.ModeRange {
		res.Start = picker.SingleValue(v.Range.Start).Format(s.DateFormat)
		res.End = picker.SingleValue(v.Range.End).Format(s.DateFormat)
	}
	return res
}

func newPickCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pick [initial-value]",
		Short: "Pick a date or range interactively",
		Long: `Open the interactive picker and print the confirmed value.

The optional initial value uses the configured date format; ranges are
written START..END and either side may be empty.

Keys:
  f2 / ctrl+o    open or close the calendar
  enter          set the typed date (calendar: select the day under the cursor)
  tab            switch between range fields
  [ / ]          previous / next month
  1-4            quarter shortcut (range mode)
  S / E          move range start / end to the cursor
  a / esc        apply / close the calendar
  ctrl+s         confirm, ctrl+c cancel`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cli.IsInteractive() {
				return utils.ErrNotATerminal()
			}

			a, err := flags.loadApp()
			if err != nil {
				return err
			}

			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}

			restore, err := redirectLogs(flags.verbose)
			if err != nil {
				return err
			}
			value, err := a.Pick(initial)
			restore()
			if err != nil {
				return err
			}

			res := newPickResult(a.Settings(), value)

			return utils.Output(flags.output, res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.Value)
				return err
			})
		},
	}
}

// redirectLogs keeps log output off the alternate screen while the picker
// runs: to debug.log in verbose mode, discarded otherwise.
func redirectLogs(verbose bool) (func(), error) {
	restore := func() { utils.SetVerboseMode(verbose) }
	if !verbose {
		utils.SilenceLogs()
		return restore, nil
	}

	dir, err := utils.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "datepicker")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		f.Close()
		restore()
	}, nil
}
