package picker

import "time"

// Bounds is the inclusive validity window. Min is the start of a day and
// Max is the last instant of a day; both are produced by NormalizeBounds.
//
// When the supplied minimum falls after the supplied maximum the window is
// empty and every date is invalid. That is a caller configuration error and
// is reported by Empty rather than by a panic or an error return.
type Bounds struct {
	Min time.Time
	Max time.Time
}

// NormalizeBounds aligns the raw minimum to the start of its day and the raw
// maximum to the end of its day.
func NormalizeBounds(rawMin, rawMax time.Time) Bounds {
	return Bounds{
		Min: StartOfDay(rawMin),
		Max: EndOfDay(rawMax),
	}
}

// Empty reports whether no date can satisfy the bounds.
func (b Bounds) Empty() bool {
	return b.Min.After(b.Max)
}

// Contains reports whether d lies within [Min, Max].
func (b Bounds) Contains(d time.Time) bool {
	return !d.Before(b.Min) && !d.After(b.Max)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
