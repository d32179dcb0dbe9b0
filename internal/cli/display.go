package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"datepicker/internal/app"
	"datepicker/internal/history"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// GetTerminalWidth returns the current terminal width, defaulting to 80 if unable to detect
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return width
}

// IsInteractive reports whether both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func ruleWidth() int {
	width := GetTerminalWidth() - 2
	if width < 40 {
		width = 40
	}
	if width > 100 {
		width = 100
	}
	return width
}

func header(w io.Writer, title string) {
	text := "─ " + title + " "
	padding := ruleWidth() - lipgloss.Width(text)
	if padding < 0 {
		padding = 0
	}
	fmt.Fprintln(w, headerStyle.Render(text+strings.Repeat("─", padding)))
}

// PrintCheck writes a check result as text
func PrintCheck(w io.Writer, res app.CheckResult) error {
	value := res.Value
	if value == "" {
		value = mutedStyle.Render("(empty)")
	}

	status := okStyle.Render("valid")
	if !res.Valid {
		status = warningStyle.Render("out of range")
	}

	fmt.Fprintf(w, "%-15s %s\n", "Mode:", res.Mode)
	fmt.Fprintf(w, "%-15s %s\n", "Value:", value)
	fmt.Fprintf(w, "%-15s %s\n", "Status:", status)
	fmt.Fprintf(w, "%-15s %t\n", "Fully entered:", res.FullyEntered)
	fmt.Fprintf(w, "%-15s %s\n", "Visible month:", res.VisibleMonth)
	if res.Tooltip != "" {
		fmt.Fprintf(w, "%s\n", warningStyle.Render("⚠ "+res.Tooltip))
	}
	return nil
}

// PrintQuarters writes the quarter shortcuts of a year as text
func PrintQuarters(w io.Writer, year int, quarters []app.QuarterInfo) error {
	if len(quarters) == 0 {
		fmt.Fprintf(w, "No quarters of %d fall inside the allowed dates.\n", year)
		return nil
	}

	header(w, fmt.Sprintf("Quarters %d", year))
	for _, q := range quarters {
		fmt.Fprintf(w, "  %-8s %s %s %s\n", q.Label, q.Start, mutedStyle.Render(".."), q.End)
	}
	return nil
}

// PrintHistory writes history entries as text, newest first
func PrintHistory(w io.Writer, entries []history.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No selections recorded yet.")
		return nil
	}

	header(w, "Recent selections")
	for _, e := range entries {
		value := e.Start
		if e.Mode == "date-range" {
			value = e.Start + ".." + e.End
		}
		if value == "" {
			value = "(empty)"
		}

		marker := ""
		if e.Invalid {
			marker = " " + warningStyle.Render("[out of range]")
		}
		fmt.Fprintf(w, "  %4d. %-10s %-23s %s%s\n",
			e.ID, e.Mode, value,
			mutedStyle.Render(e.RecordedAt.Format("2006-01-02 15:04")), marker)
	}
	return nil
}

// PrintSettings writes the effective settings as text
func PrintSettings(w io.Writer, s app.Settings, configPath string) error {
	fmt.Fprintf(w, "%-13s %s\n", "Config file:", configPath)
	fmt.Fprintf(w, "%-13s %s\n", "Mode:", s.Mode)
	fmt.Fprintf(w, "%-13s %s\n", "Min date:", s.MinDate.Format("2006-01-02"))
	fmt.Fprintf(w, "%-13s %s\n", "Max date:", s.MaxDate.Format("2006-01-02"))
	fmt.Fprintf(w, "%-13s %s\n", "Date format:", s.DateFormat)
	fmt.Fprintf(w, "%-13s %s\n", "Size:", s.Size)
	fmt.Fprintf(w, "%-13s %t\n", "History:", s.History)
	return nil
}
