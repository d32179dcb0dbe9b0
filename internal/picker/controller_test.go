package picker

import (
	"strings"
	"testing"
	"time"
)

var (
	minDate = date(2024, time.January, 1)
	maxDate = date(2024, time.December, 31)
)

// embedder mimics the component that owns the canonical value.
type embedder struct {
	value   Value
	changes []Value
}

func (e *embedder) onChange(v Value) {
	e.value = v
	e.changes = append(e.changes, v)
}

func newTestController(mode Mode, value Value) (*Controller, *embedder) {
	e := &embedder{value: value}
	c := New(Config{
		Mode:     mode,
		MinDate:  minDate,
		MaxDate:  maxDate,
		Value:    value,
		OnChange: e.onChange,
	})
	return c, e
}

// TestScenarioA verifies an empty single picker shows the month of minDate
func TestScenarioA(t *testing.T) {
	c, _ := newTestController(ModeSingle, EmptyValue(ModeSingle))

	if !c.VisibleMonth().Equal(date(2024, time.January, 1)) {
		t.Errorf("Expected January 2024, got %v", c.VisibleMonth())
	}
	if c.Invalid() {
		t.Error("Expected empty value not to be invalid")
	}
	if c.IsOpen() {
		t.Error("Expected panel to start closed")
	}
}

// TestScenarioB verifies a valid single value anchors its own month
func TestScenarioB(t *testing.T) {
	c, _ := newTestController(ModeSingle, SingleValue(date(2024, time.July, 15)))

	if !SameMonth(c.VisibleMonth(), date(2024, time.July, 1)) {
		t.Errorf("Expected July 2024, got %v", c.VisibleMonth())
	}
	if c.Invalid() {
		t.Error("Expected value to be valid")
	}
	if c.TooltipContent() != "" {
		t.Errorf("Expected no tooltip, got %q", c.TooltipContent())
	}
}

// TestScenarioC verifies an out-of-range value is kept, flagged and clamped
func TestScenarioC(t *testing.T) {
	c, _ := newTestController(ModeSingle, SingleValue(date(2025, time.January, 1)))

	if !c.Invalid() {
		t.Error("Expected value to be invalid")
	}
	if !SameMonth(c.VisibleMonth(), date(2024, time.December, 1)) {
		t.Errorf("Expected December 2024, got %v", c.VisibleMonth())
	}
	if !c.Value().Date.Equal(date(2025, time.January, 1)) {
		t.Error("Expected out-of-range value to be stored unchanged")
	}
	if !strings.Contains(c.TooltipContent(), "31.12.2024") {
		t.Errorf("Expected bounds message in tooltip, got %q", c.TooltipContent())
	}

	c.Activate()
	if c.TooltipContent() != "" {
		t.Error("Expected tooltip to be hidden while the panel is open")
	}
}

// TestScenarioD verifies a partial range is valid, incomplete and anchored on its start
func TestScenarioD(t *testing.T) {
	c, _ := newTestController(ModeRange, RangeValue(date(2024, time.March, 1), time.Time{}))

	if c.FullyEntered() {
		t.Error("Expected partial range not to be fully entered")
	}
	if c.Invalid() {
		t.Error("Expected partial range to be valid")
	}
	if !SameMonth(c.VisibleMonth(), date(2024, time.March, 1)) {
		t.Errorf("Expected March 2024, got %v", c.VisibleMonth())
	}
}

// TestScenarioE verifies a quarter shortcut commits its pair and moves the cursor
func TestScenarioE(t *testing.T) {
	c, e := newTestController(ModeRange, EmptyValue(ModeRange))
	c.Activate()

	c.SelectQuarter(Range{Start: date(2024, time.April, 1), End: date(2024, time.June, 30)})

	want := RangeValue(date(2024, time.April, 1), date(2024, time.June, 30))
	if !c.Value().Equal(want) {
		t.Errorf("Expected value %v, got %v", want, c.Value())
	}
	if len(e.changes) != 1 || !e.changes[0].Equal(want) {
		t.Errorf("Expected one OnChange with %v, got %v", want, e.changes)
	}
	if !SameMonth(c.VisibleMonth(), date(2024, time.April, 1)) {
		t.Errorf("Expected April 2024, got %v", c.VisibleMonth())
	}
	if !c.IsOpen() {
		t.Error("Expected panel to stay open")
	}
}

// TestScenarioF verifies dismiss closes the panel without touching the value
func TestScenarioF(t *testing.T) {
	c, e := newTestController(ModeSingle, EmptyValue(ModeSingle))
	c.Activate()
	c.SelectDay(SingleValue(date(2024, time.May, 2)))
	committed := c.Value()

	c.Dismiss()

	if c.IsOpen() {
		t.Error("Expected panel to be closed")
	}
	if !c.Value().Equal(committed) {
		t.Errorf("Expected value %v to survive dismiss, got %v", committed, c.Value())
	}
	if len(e.changes) != 1 {
		t.Errorf("Expected dismiss not to call OnChange, got %d calls", len(e.changes))
	}
}

func TestPanelTransitions(t *testing.T) {
	c, _ := newTestController(ModeSingle, EmptyValue(ModeSingle))

	c.Apply()
	if c.IsOpen() {
		t.Error("Apply on a closed panel should keep it closed")
	}

	c.Activate()
	if !c.IsOpen() {
		t.Fatal("Expected Activate to open the panel")
	}
	c.Activate()
	if c.IsOpen() {
		t.Fatal("Expected second Activate to close the panel")
	}

	c.Activate()
	c.Apply()
	if c.Panel() != PanelClosed {
		t.Errorf("Expected PanelClosed after Apply, got %v", c.Panel())
	}
}

// TestSelectDay_ModeMismatch verifies shapes from the other mode are ignored
func TestSelectDay_ModeMismatch(t *testing.T) {
	single, se := newTestController(ModeSingle, EmptyValue(ModeSingle))
	single.SelectDay(RangeValue(date(2024, time.May, 1), date(2024, time.May, 3)))
	if len(se.changes) != 0 || !single.Value().IsEmpty() {
		t.Error("Expected range value to be ignored in single mode")
	}

	rng, re := newTestController(ModeRange, EmptyValue(ModeRange))
	rng.SelectDay(SingleValue(date(2024, time.May, 1)))
	if len(re.changes) != 0 || !rng.Value().IsEmpty() {
		t.Error("Expected single value to be ignored in range mode")
	}

	single.Activate()
	single.SelectQuarter(Range{Start: date(2024, time.April, 1), End: date(2024, time.June, 30)})
	if len(se.changes) != 0 {
		t.Error("Expected quarter shortcut to be ignored in single mode")
	}
}

// TestSelectDay_RangeForwardedUnchanged verifies the grid's pair is committed as is
func TestSelectDay_RangeForwardedUnchanged(t *testing.T) {
	c, e := newTestController(ModeRange, RangeValue(date(2024, time.March, 1), date(2024, time.March, 9)))
	c.Activate()

	emitted := RangeValue(date(2024, time.May, 20), time.Time{})
	c.SelectDay(emitted)

	if !c.Value().Equal(emitted) || !e.value.Equal(emitted) {
		t.Errorf("Expected %v to be forwarded unchanged, got %v", emitted, c.Value())
	}
	if !c.IsOpen() {
		t.Error("Expected panel to stay open after selection")
	}
}

func TestEditEndpoints(t *testing.T) {
	c, e := newTestController(ModeRange, EmptyValue(ModeRange))

	c.EditStart(date(2024, time.February, 3))
	c.EditEnd(date(2025, time.February, 3))

	want := RangeValue(date(2024, time.February, 3), date(2025, time.February, 3))
	if !e.value.Equal(want) {
		t.Errorf("Expected %v, got %v", want, e.value)
	}
	if !c.Invalid() {
		t.Error("Expected out-of-range end to be flagged")
	}

	c.EditDate(date(2024, time.March, 3))
	if len(e.changes) != 2 {
		t.Errorf("Expected single-date edit to be ignored in range mode, got %d changes", len(e.changes))
	}
}

func TestEditDate_Clear(t *testing.T) {
	c, e := newTestController(ModeSingle, SingleValue(date(2024, time.March, 3)))

	c.EditDate(time.Time{})

	if !e.value.IsEmpty() || !c.Value().IsEmpty() {
		t.Error("Expected zero date to clear the value")
	}
}

func TestDropEndpoint(t *testing.T) {
	c, e := newTestController(ModeRange, RangeValue(date(2024, time.March, 10), date(2024, time.March, 20)))

	c.DropEndpoint(EndpointEnd, date(2024, time.March, 5))

	want := RangeValue(date(2024, time.March, 5), date(2024, time.March, 10))
	if !e.value.Equal(want) {
		t.Errorf("Expected reordered pair %v, got %v", want, e.value)
	}
}

// TestReconcile_Idempotent verifies repeated reconciliation settles on one month
func TestReconcile_Idempotent(t *testing.T) {
	c, _ := newTestController(ModeSingle, EmptyValue(ModeSingle))
	v := SingleValue(date(2024, time.September, 9))

	c.Reconcile(v, minDate, maxDate)
	once := c.VisibleMonth()
	c.Reconcile(v, minDate, maxDate)

	if !c.VisibleMonth().Equal(once) {
		t.Errorf("Expected %v after second reconcile, got %v", once, c.VisibleMonth())
	}
	if !SameMonth(once, date(2024, time.September, 1)) {
		t.Errorf("Expected September 2024, got %v", once)
	}
}

// TestReconcile_PartialRangeKeepsCursor verifies mid-entry values never move the navigator
func TestReconcile_PartialRangeKeepsCursor(t *testing.T) {
	c, _ := newTestController(ModeRange, EmptyValue(ModeRange))
	c.Navigate(date(2024, time.October, 1))

	c.Reconcile(RangeValue(date(2024, time.March, 1), time.Time{}), minDate, maxDate)

	if !SameMonth(c.VisibleMonth(), date(2024, time.October, 1)) {
		t.Errorf("Expected cursor to stay on October, got %v", c.VisibleMonth())
	}
	if !c.Value().Range.Start.Equal(date(2024, time.March, 1)) {
		t.Error("Expected value to be adopted even when the cursor stays")
	}
}

// TestReconcile_FullValueOverridesNavigation verifies external values win over paging
func TestReconcile_FullValueOverridesNavigation(t *testing.T) {
	c, _ := newTestController(ModeRange, EmptyValue(ModeRange))
	c.Navigate(date(2024, time.October, 1))

	c.Reconcile(RangeValue(date(2024, time.March, 1), date(2024, time.March, 4)), minDate, maxDate)

	if !SameMonth(c.VisibleMonth(), date(2024, time.March, 1)) {
		t.Errorf("Expected March 2024, got %v", c.VisibleMonth())
	}
}

// TestReconcile_PanelUntouched verifies reconciling never opens or closes the panel
func TestReconcile_PanelUntouched(t *testing.T) {
	c, _ := newTestController(ModeSingle, EmptyValue(ModeSingle))
	c.Activate()

	c.Reconcile(SingleValue(date(2024, time.June, 1)), minDate, maxDate)

	if !c.IsOpen() {
		t.Error("Expected panel to remain open")
	}
}

// TestReconcile_Bounds verifies new bounds feed validity and clamping
func TestReconcile_Bounds(t *testing.T) {
	c, _ := newTestController(ModeSingle, SingleValue(date(2024, time.June, 1)))

	c.Reconcile(SingleValue(date(2024, time.June, 1)), date(2024, time.July, 1), date(2024, time.August, 31))

	if !c.Invalid() {
		t.Error("Expected value to become invalid under new bounds")
	}
	if !SameMonth(c.VisibleMonth(), date(2024, time.July, 1)) {
		t.Errorf("Expected cursor clamped to July, got %v", c.VisibleMonth())
	}
}

// TestNew_MismatchedValue verifies a value of the wrong shape is dropped at construction
func TestNew_MismatchedValue(t *testing.T) {
	c := New(Config{
		Mode:    ModeRange,
		MinDate: minDate,
		MaxDate: maxDate,
		Value:   SingleValue(date(2024, time.May, 1)),
	})

	if c.Mode() != ModeRange {
		t.Errorf("Expected range mode, got %v", c.Mode())
	}
	if !c.Value().IsEmpty() || c.Value().Mode != ModeRange {
		t.Errorf("Expected empty range value, got %+v", c.Value())
	}
}
