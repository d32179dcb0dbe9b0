package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"datepicker/internal/cli"
	"datepicker/internal/config"
	"datepicker/internal/utils"
)

// newConfigCmd creates the config command with its subcommands
func newConfigCmd(flags *rootFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective settings after flags are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.loadApp()
			if err != nil {
				return err
			}
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}

			settings := a.Settings()
			return utils.Output(flags.output, settings, func(w io.Writer) error {
				return cli.PrintSettings(w, settings, path)
			})
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	})

	return configCmd
}
