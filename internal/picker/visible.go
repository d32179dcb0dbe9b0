package picker

import "time"

// MonthStart returns midnight of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameMonth compares calendar month identity (year and month).
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ResolveVisibleMonth returns the month the navigator and the day grid should show.
//
// The anchor is the single date, or the range start falling back to the
// range end. An anchor inside the bounds shows its own month, an anchor
// outside them is clamped to the month of the nearest bound, and a value
// with no anchor shows the month of the minimum.
func ResolveVisibleMonth(v Value, b Bounds) time.Time {
	anchor, ok := anchorDate(v)
	switch {
	case !ok:
		return MonthStart(b.Min)
	case anchor.Before(b.Min):
		return MonthStart(b.Min)
	case anchor.After(b.Max):
		return MonthStart(b.Max)
	default:
		return MonthStart(anchor)
	}
}

func anchorDate(v Value) (time.Time, bool) {
	if v.Mode == ModeRange {
		if !v.Range.Start.IsZero() {
			return v.Range.Start, true
		}
		if !v.Range.End.IsZero() {
			return v.Range.End, true
		}
		return time.Time{}, false
	}
	if v.Date.IsZero() {
		return time.Time{}, false
	}
	return v.Date, true
}

// StepMonth moves a visible month by delta months.
func StepMonth(month time.Time, delta int) time.Time {
	return MonthStart(month).AddDate(0, delta, 0)
}

// CanStepMonth reports whether paging by delta months keeps at least part
// of the target month inside the bounds.
func CanStepMonth(month time.Time, delta int, b Bounds) bool {
	target := StepMonth(month, delta)
	last := EndOfDay(target.AddDate(0, 1, -1))
	return !last.Before(b.Min) && !target.After(b.Max)
}
