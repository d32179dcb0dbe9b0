package utils

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDateLayout is the Go layout used when none is configured.
const DefaultDateLayout = "2006-01-02"

// RangeSeparator separates the endpoints of a range typed on the command line.
const RangeSeparator = ".."

// ParseDate parses text with the given Go layout in the local timezone.
// Returns the zero time for empty text (used to clear a date).
// Returns error for invalid formats or dates.
func ParseDate(text, layout string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}
	if layout == "" {
		layout = DefaultDateLayout
	}

	parsed, err := time.ParseInLocation(layout, text, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate(text, layout)
	}
	return parsed, nil
}

// ParseRange parses "START..END" where either side may be empty.
func ParseRange(text, layout string) (time.Time, time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, time.Time{}, nil
	}

	startText, endText, ok := strings.Cut(text, RangeSeparator)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidRange(text)
	}

	start, err := ParseDate(startText, layout)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(endText, layout)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// ValidateLayout checks that a Go layout round-trips a full date.
func ValidateLayout(layout string) error {
	if strings.TrimSpace(layout) == "" {
		return fmt.Errorf("date layout is empty")
	}

	ref := time.Date(2026, time.November, 27, 0, 0, 0, 0, time.UTC)
	parsed, err := time.Parse(layout, ref.Format(layout))
	if err != nil {
		return fmt.Errorf("date layout %q cannot be parsed back: %w", layout, err)
	}
	if y, m, d := parsed.Date(); y != ref.Year() || m != ref.Month() || d != ref.Day() {
		return fmt.Errorf("date layout %q must contain year, month and day", layout)
	}
	return nil
}

// DescribeLayout renders a Go layout in the YYYY-MM-DD notation users know.
func DescribeLayout(layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	r := strings.NewReplacer(
		"2006", "YYYY",
		"01", "MM",
		"02", "DD",
		"Jan", "MON",
	)
	return r.Replace(layout)
}

func exampleDate(layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC).Format(layout)
}
