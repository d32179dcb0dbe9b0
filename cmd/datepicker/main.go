package main

import (
	"os"

	"github.com/spf13/cobra"

	"datepicker/internal/app"
	"datepicker/internal/cli"
	"datepicker/internal/config"
	"datepicker/internal/utils"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configPath string
	verbose    bool
	output     string
	overrides  app.Overrides
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "datepicker",
		Short: "Terminal date and date-range picker",
		Long: `Pick a single date or a date range inside an allowed window.

Dates outside the window can still be typed; they are kept and flagged
with a warning instead of being rejected.

Examples:
  datepicker pick                                  # Pick a date interactively
  datepicker pick --mode date-range 2024-03-01..   # Continue a partial range
  datepicker check 2025-01-01 --max 2024-12-31     # Validate without a UI
  datepicker quarters 2024 -o json                 # Quarter shortcuts of a year
  datepicker history list                          # Recently picked values`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			utils.SetVerboseMode(flags.verbose)
			config.SetCustomConfigPath(flags.configPath)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file or directory (default $XDG_CONFIG_HOME/datepicker/config.yaml)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&flags.output, "output", "o", utils.FormatText, "output format: text, json, yaml")
	pf.StringVar(&flags.overrides.Mode, "mode", "", "selection mode: date or date-range")
	pf.StringVar(&flags.overrides.MinDate, "min", "", "first allowed date (YYYY-MM-DD)")
	pf.StringVar(&flags.overrides.MaxDate, "max", "", "last allowed date (YYYY-MM-DD)")
	pf.StringVar(&flags.overrides.DateFormat, "date-format", "", "Go layout of typed dates, e.g. 02.01.2006")
	pf.StringVar(&flags.overrides.Size, "size", "", "entry field size: s, m or l")
	pf.BoolVar(&flags.overrides.NoHistory, "no-history", false, "do not read or record selection history")

	_ = rootCmd.RegisterFlagCompletionFunc("mode", cli.ModeCompletion())
	_ = rootCmd.RegisterFlagCompletionFunc("output", cli.FormatCompletion())
	_ = rootCmd.RegisterFlagCompletionFunc("size", cli.SizeCompletion())

	rootCmd.AddCommand(newPickCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newQuartersCmd(flags))
	rootCmd.AddCommand(newHistoryCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))

	return rootCmd
}

// loadApp reads the configuration and applies the command line overrides
func (f *rootFlags) loadApp() (*app.App, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	a, err := app.NewApp(cfg, f.overrides)
	if err != nil {
		return nil, err
	}
	utils.Debugf("Loaded configuration from %s", configPath)
	return a, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
