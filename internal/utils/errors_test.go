package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorWithSuggestion_Error(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		suggestion     string
		wantContains   []string
		wantNotContain string
	}{
		{
			name:         "with suggestion",
			err:          errors.New("date not found"),
			suggestion:   "Try searching with a different term",
			wantContains: []string{"date not found", "Suggestion:", "Try searching"},
		},
		{
			name:           "without suggestion",
			err:            errors.New("simple error"),
			suggestion:     "",
			wantContains:   []string{"simple error"},
			wantNotContain: "Suggestion:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &ErrorWithSuggestion{
				Err:        tt.err,
				Suggestion: tt.suggestion,
			}

			result := e.Error()

			for _, want := range tt.wantContains {
				if !strings.Contains(result, want) {
					t.Errorf("Error() = %q, want to contain %q", result, want)
				}
			}

			if tt.wantNotContain != "" && strings.Contains(result, tt.wantNotContain) {
				t.Errorf("Error() = %q, should not contain %q", result, tt.wantNotContain)
			}
		})
	}
}

func TestErrorWithSuggestion_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	wrapped := &ErrorWithSuggestion{
		Err:        originalErr,
		Suggestion: "do something",
	}

	unwrapped := wrapped.Unwrap()
	if unwrapped != originalErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, originalErr)
	}

	// Test with errors.Is
	if !errors.Is(wrapped, originalErr) {
		t.Error("errors.Is should work with wrapped error")
	}
}

func TestErrInvalidDate(t *testing.T) {
	err := ErrInvalidDate("01/15/2026", "2006-01-02")

	errStr := err.Error()
	if !strings.Contains(errStr, "01/15/2026") {
		t.Errorf("Error should contain the rejected input, got: %s", errStr)
	}
	if !strings.Contains(errStr, "YYYY-MM-DD") {
		t.Errorf("Error should describe the expected layout, got: %s", errStr)
	}
}

func TestErrInvalidBounds(t *testing.T) {
	err := ErrInvalidBounds("2024-12-31", "2024-01-01")

	errStr := err.Error()
	if !strings.Contains(errStr, "2024-12-31") || !strings.Contains(errStr, "2024-01-01") {
		t.Errorf("Error should contain both bounds, got: %s", errStr)
	}
	if !strings.Contains(errStr, "--min") {
		t.Errorf("Error should suggest fixing the flags, got: %s", errStr)
	}
}

func TestErrInvalidMode(t *testing.T) {
	err := ErrInvalidMode("week", []string{"date", "date-range"})

	errStr := err.Error()
	if !strings.Contains(errStr, "week") {
		t.Errorf("Error should contain the invalid mode, got: %s", errStr)
	}
	if !strings.Contains(errStr, "date, date-range") {
		t.Errorf("Error should list valid modes, got: %s", errStr)
	}
}

func TestErrPickCancelled(t *testing.T) {
	err := ErrPickCancelled()

	var withSuggestion *ErrorWithSuggestion
	if !errors.As(err, &withSuggestion) {
		t.Fatal("Expected ErrorWithSuggestion")
	}
	if !strings.Contains(withSuggestion.Suggestion, "ctrl+s") {
		t.Errorf("Suggestion should mention the confirm key, got: %s", withSuggestion.Suggestion)
	}
}

func TestErrInvalidConfig(t *testing.T) {
	err := ErrInvalidConfig("size", "must be one of s, m, l")

	errStr := err.Error()
	if !strings.Contains(errStr, "'size'") {
		t.Errorf("Error should name the field, got: %s", errStr)
	}
	if !strings.Contains(errStr, "config.yaml") {
		t.Errorf("Error should mention config file, got: %s", errStr)
	}
}

func TestWrapWithSuggestion(t *testing.T) {
	if WrapWithSuggestion(nil, "ignored") != nil {
		t.Error("Wrapping nil should return nil")
	}

	base := errors.New("base")
	err := WrapWithSuggestion(base, "try again")
	if !errors.Is(err, base) {
		t.Error("errors.Is should find the wrapped error")
	}
	if !strings.Contains(err.Error(), "try again") {
		t.Errorf("Error should contain suggestion, got: %s", err.Error())
	}
}
