package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"datepicker/internal/picker"
	"datepicker/internal/utils"
)

// CompleteFrom returns a flag completion function offering the given values
func CompleteFrom(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var completions []string
		for _, v := range values {
			if strings.HasPrefix(v, strings.ToLower(toComplete)) {
				completions = append(completions, v)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}

// ModeCompletion completes the --mode flag
func ModeCompletion() func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return CompleteFrom([]string{string(picker.ModeSingle), string(picker.ModeRange)})
}

// FormatCompletion completes the --format flag
func FormatCompletion() func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return CompleteFrom(utils.OutputFormats)
}

// SizeCompletion completes the --size flag
func SizeCompletion() func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return CompleteFrom([]string{"s", "m", "l"})
}
