// Package picker holds the date-selection coordination logic shared by the
// single-date and date-range pickers.
//
// The package has no knowledge of the terminal. Surfaces (text entry fields,
// the month/quarter navigator, the day grid and the floating panel host) talk
// to a Controller, which owns the selected value, the visible month and the
// panel state. Bounds normalization, validation, visible-month resolution and
// range endpoint editing are pure functions over Value and Bounds.
//
// Usage:
//
//	ctrl := picker.New(picker.Config{
//	    Mode:     picker.ModeRange,
//	    MinDate:  minDate,
//	    MaxDate:  maxDate,
//	    OnChange: func(v picker.Value) { current = v },
//	})
//	ctrl.Activate()
//	ctrl.SelectDay(picker.RangeValue(start, time.Time{}))
//	ctrl.Reconcile(current, minDate, maxDate)
package picker

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects between the single-date and the date-range picker.
// It is fixed when a Controller is constructed.
type Mode string

const (
	// ModeSingle selects one date.
	ModeSingle Mode = "date"

	// ModeRange selects a pair of optional endpoints.
	ModeRange Mode = "date-range"
)

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.TrimSpace(s)) {
	case ModeSingle:
		return ModeSingle, nil
	case ModeRange:
		return ModeRange, nil
	default:
		return "", fmt.Errorf("unknown picker mode %q (valid: %s, %s)", s, ModeSingle, ModeRange)
	}
}

func (m Mode) String() string {
	return string(m)
}

// Range is a pair of optional endpoints. The zero time.Time marks an absent endpoint.
type Range struct {
	Start time.Time
	End   time.Time
}

// Empty reports whether both endpoints are absent.
func (r Range) Empty() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Partial reports whether exactly one endpoint is present.
func (r Range) Partial() bool {
	return r.Start.IsZero() != r.End.IsZero()
}

// Full reports whether both endpoints are present.
func (r Range) Full() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Value is the tagged selection value. Mode decides which of Date or Range
// is meaningful; the other field is ignored.
type Value struct {
	Mode  Mode
	Date  time.Time
	Range Range
}

// SingleValue returns a single-mode value. A zero date is an empty value.
func SingleValue(d time.Time) Value {
	return Value{Mode: ModeSingle, Date: d}
}

// RangeValue returns a range-mode value.
func RangeValue(start, end time.Time) Value {
	return Value{Mode: ModeRange, Range: Range{Start: start, End: end}}
}

// EmptyValue returns the value with no date entered for the given mode.
func EmptyValue(mode Mode) Value {
	return Value{Mode: mode}
}

// IsEmpty reports whether no date at all is present.
func (v Value) IsEmpty() bool {
	if v.Mode == ModeRange {
		return v.Range.Empty()
	}
	return v.Date.IsZero()
}

// Dates returns the present dates of the value in endpoint order.
func (v Value) Dates() []time.Time {
	var dates []time.Time
	if v.Mode == ModeRange {
		if !v.Range.Start.IsZero() {
			dates = append(dates, v.Range.Start)
		}
		if !v.Range.End.IsZero() {
			dates = append(dates, v.Range.End)
		}
		return dates
	}
	if !v.Date.IsZero() {
		dates = append(dates, v.Date)
	}
	return dates
}

// Equal compares two values by mode and instant.
func (v Value) Equal(o Value) bool {
	if v.Mode != o.Mode {
		return false
	}
	if v.Mode == ModeRange {
		return v.Range.Start.Equal(o.Range.Start) && v.Range.End.Equal(o.Range.End)
	}
	return v.Date.Equal(o.Date)
}

// Format renders the value with the given layout. Absent range endpoints
// are rendered as an empty string on their side of the separator.
func (v Value) Format(layout string) string {
	if v.Mode == ModeRange {
		return formatDate(v.Range.Start, layout) + ".." + formatDate(v.Range.End, layout)
	}
	return formatDate(v.Date, layout)
}

func (v Value) String() string {
	return v.Format("2006-01-02")
}

func formatDate(d time.Time, layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layout)
}
