package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"datepicker/internal/cli"
	"datepicker/internal/utils"
)

// newHistoryCmd creates the history command with its subcommands
func newHistoryCmd(flags *rootFlags) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recently picked values",
		Long: `Every value committed in 'datepicker pick' is recorded in a local SQLite
database unless history is disabled.

Examples:
  datepicker history list             # Most recent selections
  datepicker history list --limit 50  # More entries
  datepicker history clear            # Forget everything`,
	}

	historyCmd.AddCommand(newHistoryListCmd(flags))
	historyCmd.AddCommand(newHistoryClearCmd(flags))
	return historyCmd
}

func newHistoryListCmd(flags *rootFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent selections, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.loadApp()
			if err != nil {
				return err
			}

			entries, err := a.RecentHistory(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return utils.Output(flags.output, entries, func(w io.Writer) error {
				return cli.PrintHistory(w, entries)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of entries (default from config)")
	return cmd
}

func newHistoryClearCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded selections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.loadApp()
			if err != nil {
				return err
			}

			n, err := a.ClearHistory(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Removed %d entries.\n", n)
			return nil
		},
	}
}
