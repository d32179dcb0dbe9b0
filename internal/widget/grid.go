package widget

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"datepicker/internal/picker"
)

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// gridSelection returns the value a day grid emits when day d is chosen.
// In range mode a click on an empty or full range starts a new one; when only
// one endpoint is set the click completes the pair, ordered.
func gridSelection(current picker.Value, d time.Time) picker.Value {
	if current.Mode != picker.ModeRange {
		return picker.SingleValue(d)
	}

	r := current.Range
	switch {
	case r.Empty() || r.Full():
		return picker.RangeValue(d, time.Time{})
	case r.Start.IsZero():
		return picker.Value{Mode: picker.ModeRange, Range: picker.Ordered(picker.Range{Start: d, End: r.End})}
	default:
		return picker.Value{Mode: picker.ModeRange, Range: picker.Ordered(picker.Range{Start: r.Start, End: d})}
	}
}

// cursorFor picks the day the grid cursor starts on for a month: a selected
// date inside the month, else the first day of the month inside bounds.
func cursorFor(month time.Time, v picker.Value, b picker.Bounds) time.Time {
	for _, d := range v.Dates() {
		if picker.SameMonth(d, month) && b.Contains(d) {
			return picker.StartOfDay(d)
		}
	}

	d := picker.MonthStart(month)
	if b.Empty() {
		return d
	}
	if d.Before(b.Min) && picker.SameMonth(b.Min, month) {
		return picker.StartOfDay(b.Min)
	}
	if d.After(b.Max) {
		return picker.StartOfDay(b.Max)
	}
	return d
}

type dayKind int

const (
	dayNormal dayKind = iota
	dayDisabled
	dayInRange
	daySelected
)

func classifyDay(d time.Time, v picker.Value, b picker.Bounds) dayKind {
	switch v.Mode {
	case picker.ModeSingle:
		if !v.Date.IsZero() && picker.SameDay(d, v.Date) {
			return daySelected
		}
	case picker.ModeRange:
		r := v.Range
		if (!r.Start.IsZero() && picker.SameDay(d, r.Start)) || (!r.End.IsZero() && picker.SameDay(d, r.End)) {
			return daySelected
		}
		if r.Full() && d.After(r.Start) && d.Before(r.End) {
			return dayInRange
		}
	}
	if !b.Contains(d) {
		return dayDisabled
	}
	return dayNormal
}

func renderDay(d time.Time, kind dayKind, isCursor, isToday bool) string {
	style := dayStyle
	switch kind {
	case dayDisabled:
		style = disabledDayStyle
	case dayInRange:
		style = inRangeDayStyle
	case daySelected:
		style = selectedDayStyle
	}
	if isToday {
		style = style.Inherit(todayStyle)
	}
	if isCursor {
		style = style.Inherit(cursorDayStyle)
	}
	return style.Render(fmt.Sprintf("%2d", d.Day()))
}

// renderNavigator renders the month header with paging arrows.
func renderNavigator(month time.Time, b picker.Bounds) string {
	prev, next := "  ", "  "
	if picker.CanStepMonth(month, -1, b) {
		prev = arrowStyle.Render("‹ ")
	}
	if picker.CanStepMonth(month, 1, b) {
		next = arrowStyle.Render(" ›")
	}
	title := titleStyle.Render(month.Format("January 2006"))
	return lipgloss.PlaceHorizontal(20, lipgloss.Center, prev+title+next)
}

// renderGrid renders the Monday-first day grid of month.
func renderGrid(month, cursor, today time.Time, v picker.Value, b picker.Bounds) string {
	var s strings.Builder

	s.WriteString(weekdayStyle.Render(strings.Join(weekdayHeader, " ")))
	s.WriteString("\n")

	first := picker.MonthStart(month)
	offset := (int(first.Weekday()) + 6) % 7
	s.WriteString(strings.Repeat("   ", offset))

	col := offset
	for d := first; picker.SameMonth(d, first); d = d.AddDate(0, 0, 1) {
		cell := renderDay(d, classifyDay(d, v, b), picker.SameDay(d, cursor), picker.SameDay(d, today))
		s.WriteString(cell)
		col++
		if col == 7 {
			col = 0
			if picker.SameMonth(d.AddDate(0, 0, 1), first) {
				s.WriteString("\n")
			}
		} else {
			s.WriteString(" ")
		}
	}

	return s.String()
}

// renderQuarters renders the quarter shortcuts of the visible year.
func renderQuarters(year int, v picker.Value, b picker.Bounds) string {
	quarters := picker.Quarters(year, b)
	if len(quarters) == 0 {
		return ""
	}

	parts := make([]string, 0, len(quarters))
	for _, q := range quarters {
		label := fmt.Sprintf("%d %s", q.Number, q.Label())
		if v.Equal(picker.Value{Mode: picker.ModeRange, Range: q.Range()}) {
			parts = append(parts, activeQuarterStyle.Render(label))
		} else {
			parts = append(parts, quarterStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}
