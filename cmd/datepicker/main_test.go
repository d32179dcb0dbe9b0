package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"datepicker/internal/app"
	"datepicker/internal/config"
	"datepicker/internal/picker"
	"datepicker/internal/utils"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `mode: date
min_date: "2024-01-01"
max_date: "2024-12-31"
history:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func executeRoot(t *testing.T, args ...string) error {
	t.Helper()
	defer config.SetCustomConfigPath("")

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"pick", "check", "quarters", "history", "config"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Expected subcommand %q", name)
		}
	}
}

func TestCheckCmd(t *testing.T) {
	path := writeTestConfig(t)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"valid", []string{"check", "2024-05-01"}, false},
		{"out of range", []string{"check", "2025-05-01"}, false},
		{"out of range strict", []string{"check", "2025-05-01", "--strict"}, true},
		{"unparseable", []string{"check", "05/01/2024"}, true},
		{"min override", []string{"check", "2024-05-01", "--min", "2024-06-01", "--strict"}, true},
		{"range mode", []string{"check", "2024-05-01..2024-05-09", "--mode", "date-range", "-o", "json"}, false},
		{"bad output", []string{"check", "2024-05-01", "-o", "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", path}, tt.args...)
			err := executeRoot(t, args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestHistoryCmd_Disabled(t *testing.T) {
	path := writeTestConfig(t)
	if err := executeRoot(t, "--config", path, "history", "list"); err == nil {
		t.Error("Expected error when history is disabled")
	}
}

func TestParseYear(t *testing.T) {
	now := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{nil, 2026, false},
		{[]string{"2024"}, 2024, false},
		{[]string{"twenty"}, 0, true},
		{[]string{"0"}, 0, true},
	}

	for _, tt := range tests {
		got, err := parseYear(tt.args, now)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseYear(%v) error = %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseYear(%v) = %d, want %d", tt.args, got, tt.want)
		}
	}
}

func TestCommandErrors_CarrySuggestions(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"out of range", errOutOfRange("2030-01-01", "Enter a date between 01/01/2024 - 12/31/2024"), "Enter a date between 01/01/2024 - 12/31/2024"},
		{"out of range without message", errOutOfRange("2030-01-01", ""), "datepicker config show"},
		{"invalid year", errInvalidYear("twenty"), "four-digit year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var withSuggestion *utils.ErrorWithSuggestion
			if !errors.As(tt.err, &withSuggestion) {
				t.Fatalf("Expected ErrorWithSuggestion, got %T", tt.err)
			}
			if !strings.Contains(withSuggestion.Suggestion, tt.want) {
				t.Errorf("Expected suggestion to contain %q, got %q", tt.want, withSuggestion.Suggestion)
			}
		})
	}
}

func TestNewPickResult(t *testing.T) {
	s := app.Settings{
		Mode:       picker.ModeRange,
		MinDate:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local),
		MaxDate:    time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local),
		DateFormat: "02.01.2006",
	}
	v := picker.RangeValue(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local), time.Time{})

	res := newPickResult(s, v)
	if res.Value != "01.03.2024.." {
		t.Errorf("Expected partial range text, got %q", res.Value)
	}
	if res.Start != "01.03.2024" || res.End != "" {
		t.Errorf("Unexpected endpoints %q / %q", res.Start, res.End)
	}
	if !res.Valid {
		t.Error("Expected partial range inside bounds to be valid")
	}
	if res.Empty {
		t.Error("Expected partial range not to be empty")
	}

	if res := newPickResult(s, picker.EmptyValue(picker.ModeRange)); !res.Empty {
		t.Errorf("Expected empty result, got %+v", res)
	}
}

func TestRedirectLogs_CreatesDataDir(t *testing.T) {
	dataHome := filepath.Join(t.TempDir(), "fresh")
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Cleanup(func() { utils.SetVerboseMode(false) })

	restore, err := redirectLogs(true)
	if err != nil {
		t.Fatalf("Expected debug log to open in a fresh data directory, got %v", err)
	}
	restore()

	if _, err := os.Stat(filepath.Join(dataHome, "datepicker", "debug.log")); err != nil {
		t.Errorf("Expected debug.log to exist, got %v", err)
	}
}
