package picker

import (
	"fmt"
	"time"
)

// MessageDateLayout is the layout used in the out-of-range message.
const MessageDateLayout = "02.01.2006"

// IsInvalid reports whether a single date is missing or outside the bounds.
func IsInvalid(date time.Time, b Bounds) bool {
	return date.IsZero() || date.Before(b.Min) || date.After(b.Max)
}

// IsValueInvalid reports whether any present date of v violates the bounds.
// Absent dates make a value incomplete, not invalid.
func IsValueInvalid(v Value, b Bounds) bool {
	for _, d := range v.Dates() {
		if IsInvalid(d, b) {
			return true
		}
	}
	return false
}

// IsFullyEntered reports whether the value has every date its mode needs:
// the date in single mode, both endpoints in range mode.
func IsFullyEntered(v Value) bool {
	if v.Mode == ModeRange {
		return v.Range.Full()
	}
	return !v.Date.IsZero()
}

// BoundsMessage describes the allowed window for the out-of-range indicator.
func BoundsMessage(b Bounds) string {
	return fmt.Sprintf("Enter a date between %s - %s",
		b.Min.Format(MessageDateLayout),
		b.Max.Format(MessageDateLayout))
}
