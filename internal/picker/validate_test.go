package picker

import (
	"strings"
	"testing"
	"time"
)

func TestIsInvalid(t *testing.T) {
	b := bounds2024()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"zero date", time.Time{}, true},
		{"first instant", date(2024, time.January, 1), false},
		{"mid year", date(2024, time.July, 15), false},
		{"last day afternoon", time.Date(2024, time.December, 31, 18, 0, 0, 0, time.UTC), false},
		{"day before min", date(2023, time.December, 31), true},
		{"one nanosecond before min", date(2024, time.January, 1).Add(-time.Nanosecond), true},
		{"day after max", date(2025, time.January, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalid(tt.date, b); got != tt.want {
				t.Errorf("IsInvalid(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

// TestIsInvalid_StrictlyInside walks every day of the window
func TestIsInvalid_StrictlyInside(t *testing.T) {
	b := bounds2024()
	for d := date(2024, time.January, 2); d.Before(date(2024, time.December, 31)); d = d.AddDate(0, 0, 1) {
		if IsInvalid(d, b) {
			t.Fatalf("Expected %s to be valid", d.Format(time.DateOnly))
		}
	}
}

func TestIsValueInvalid(t *testing.T) {
	b := bounds2024()

	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"empty single", EmptyValue(ModeSingle), false},
		{"single inside", SingleValue(date(2024, time.July, 15)), false},
		{"single outside", SingleValue(date(2025, time.January, 1)), true},
		{"empty range", EmptyValue(ModeRange), false},
		{"partial range inside", RangeValue(date(2024, time.March, 1), time.Time{}), false},
		{"partial range end outside", RangeValue(time.Time{}, date(2025, time.February, 1)), true},
		{"full range inside", RangeValue(date(2024, time.March, 1), date(2024, time.April, 1)), false},
		{"full range start outside", RangeValue(date(2023, time.March, 1), date(2024, time.April, 1)), true},
		{"full range end outside", RangeValue(date(2024, time.March, 1), date(2025, time.April, 1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValueInvalid(tt.value, b); got != tt.want {
				t.Errorf("IsValueInvalid(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsFullyEntered(t *testing.T) {
	d := date(2024, time.May, 5)

	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"single undefined", EmptyValue(ModeSingle), false},
		{"single defined", SingleValue(d), true},
		{"range empty", EmptyValue(ModeRange), false},
		{"range start only", RangeValue(d, time.Time{}), false},
		{"range end only", RangeValue(time.Time{}, d), false},
		{"range full", RangeValue(d, d.AddDate(0, 0, 3)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFullyEntered(tt.value); got != tt.want {
				t.Errorf("IsFullyEntered(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestBoundsMessage(t *testing.T) {
	msg := BoundsMessage(bounds2024())

	for _, want := range []string{"01.01.2024", "31.12.2024"} {
		if !strings.Contains(msg, want) {
			t.Errorf("BoundsMessage() = %q, want to contain %q", msg, want)
		}
	}
}
