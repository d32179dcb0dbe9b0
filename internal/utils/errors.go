package utils

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with a helpful suggestion for the user
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\nSuggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap allows errors.Is and errors.As to work
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// Common error constructors with suggestions

// ErrInvalidDate creates an error for invalid date formats
func ErrInvalidDate(dateStr, layout string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid date format: %s", dateStr),
		Suggestion: fmt.Sprintf("Use %s format (e.g., %s)", DescribeLayout(layout), exampleDate(layout)),
	}
}

// ErrInvalidRange creates an error for a malformed range value
func ErrInvalidRange(value string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid date range: %s", value),
		Suggestion: "Use START..END, leaving a side empty for a partial range (e.g., 2026-01-15.. or 2026-01-15..2026-02-01)",
	}
}

// ErrInvalidBounds creates an error when the minimum date falls after the maximum
func ErrInvalidBounds(minDate, maxDate string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("min date %s is after max date %s", minDate, maxDate),
		Suggestion: "Swap --min and --max or fix min_date/max_date in the configuration file",
	}
}

// ErrInvalidMode creates an error for an unknown picker mode
func ErrInvalidMode(mode string, validModes []string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid mode: %s", mode),
		Suggestion: fmt.Sprintf("Valid modes: %s", strings.Join(validModes, ", ")),
	}
}

// ErrNotATerminal creates an error when the interactive picker has no terminal
func ErrNotATerminal() error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("standard input is not a terminal"),
		Suggestion: "Run 'datepicker check' for non-interactive validation",
	}
}

// ErrPickCancelled creates an error when the user leaves the picker without confirming
func ErrPickCancelled() error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("cancelled by user"),
		Suggestion: "Press ctrl+s to confirm a selection",
	}
}

// ErrHistoryDisabled creates an error when history commands run with history disabled
func ErrHistoryDisabled() error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("selection history is disabled in configuration"),
		Suggestion: "Enable it in ~/.config/datepicker/config.yaml by setting 'history.enabled: true'",
	}
}

// ErrInvalidConfig creates an error for invalid configuration
func ErrInvalidConfig(field string, reason string) error {
	return &ErrorWithSuggestion{
		Err:        fmt.Errorf("invalid configuration for '%s': %s", field, reason),
		Suggestion: fmt.Sprintf("Check ~/.config/datepicker/config.yaml and fix the '%s' field", field),
	}
}

// WrapWithSuggestion wraps an existing error with a suggestion
func WrapWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}
