package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		layout    string
		expectNil bool
		expectErr bool
		expected  string // Expected date in YYYY-MM-DD format
	}{
		{
			name:     "valid ISO date",
			input:    "2025-01-31",
			expected: "2025-01-31",
		},
		{
			name:     "surrounding whitespace",
			input:    "  2025-01-05 ",
			expected: "2025-01-05",
		},
		{
			name:      "empty string returns zero",
			input:     "",
			expectNil: true,
		},
		{
			name:     "dotted layout",
			input:    "15.07.2024",
			layout:   "02.01.2006",
			expected: "2024-07-15",
		},
		{
			name:      "wrong separator",
			input:     "2025/01/31",
			expectErr: true,
		},
		{
			name:      "day out of range",
			input:     "2025-02-30",
			expectErr: true,
		},
		{
			name:     "leap year date",
			input:    "2024-02-29",
			expected: "2024-02-29",
		},
		{
			name:      "text",
			input:     "tomorrow",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input, tt.layout)

			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for input '%s', got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for input '%s': %v", tt.input, err)
			}

			if tt.expectNil {
				if !result.IsZero() {
					t.Errorf("Expected zero time for input '%s', got %v", tt.input, result)
				}
				return
			}

			if got := result.Format("2006-01-02"); got != tt.expected {
				t.Errorf("Expected date %s, got %s", tt.expected, got)
			}
			if result.Location() != time.Local {
				t.Errorf("Expected local timezone, got %v", result.Location())
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart string
		wantEnd   string
		expectErr bool
	}{
		{"full", "2024-04-01..2024-06-30", "2024-04-01", "2024-06-30", false},
		{"start only", "2024-04-01..", "2024-04-01", "", false},
		{"end only", "..2024-06-30", "", "2024-06-30", false},
		{"empty", "", "", "", false},
		{"missing separator", "2024-04-01", "", "", true},
		{"bad endpoint", "2024-04-01..June", "", "", true},
	}

	format := func(d time.Time) string {
		if d.IsZero() {
			return ""
		}
		return d.Format("2006-01-02")
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseRange(tt.input, "")
			if (err != nil) != tt.expectErr {
				t.Fatalf("ParseRange(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			}
			if tt.expectErr {
				return
			}
			if format(start) != tt.wantStart || format(end) != tt.wantEnd {
				t.Errorf("ParseRange(%q) = %s..%s, want %s..%s", tt.input, format(start), format(end), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestValidateLayout(t *testing.T) {
	tests := []struct {
		layout  string
		wantErr bool
	}{
		{"2006-01-02", false},
		{"02.01.2006", false},
		{"Jan 2, 2006", false},
		{"2006-01", true},
		{"", true},
		{"15:04", true},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			err := ValidateLayout(tt.layout)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayout(%q) error = %v, wantErr %v", tt.layout, err, tt.wantErr)
			}
		})
	}
}

func TestDescribeLayout(t *testing.T) {
	if got := DescribeLayout("02.01.2006"); got != "DD.MM.YYYY" {
		t.Errorf("DescribeLayout() = %q", got)
	}
	if got := DescribeLayout(""); got != "YYYY-MM-DD" {
		t.Errorf("DescribeLayout(\"\") = %q", got)
	}
}
