package picker

import (
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input     string
		want      Mode
		expectErr bool
	}{
		{"date", ModeSingle, false},
		{"date-range", ModeRange, false},
		{" date-range ", ModeRange, false},
		{"range", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValueFormat(t *testing.T) {
	d := date(2024, time.March, 1)

	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"single", SingleValue(d), "2024-03-01"},
		{"single empty", EmptyValue(ModeSingle), ""},
		{"range full", RangeValue(d, d.AddDate(0, 0, 2)), "2024-03-01..2024-03-03"},
		{"range start only", RangeValue(d, time.Time{}), "2024-03-01.."},
		{"range end only", RangeValue(time.Time{}, d), "..2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	d := date(2024, time.March, 1)
	inOtherZone := d.In(time.FixedZone("UTC+2", 2*60*60))

	if !SingleValue(d).Equal(SingleValue(inOtherZone)) {
		t.Error("Expected same instant in another zone to be equal")
	}
	if SingleValue(d).Equal(RangeValue(d, time.Time{})) {
		t.Error("Expected values of different modes to differ")
	}
	if RangeValue(d, time.Time{}).Equal(RangeValue(time.Time{}, d)) {
		t.Error("Expected endpoints to be compared positionally")
	}
}
