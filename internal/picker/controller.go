package picker

import (
	"time"

	"datepicker/internal/utils"
)

// Config holds the construction parameters of a Controller.
type Config struct {
	// Mode is fixed for the controller's lifetime. Empty means ModeSingle.
	Mode Mode

	// MinDate and MaxDate are the raw bounds; they are normalized to the
	// start and end of their days.
	MinDate time.Time
	MaxDate time.Time

	// Value is the embedder's current value. A value tagged with another
	// mode is replaced by the empty value of Mode.
	Value Value

	// OnChange receives every committed value. Its shape always matches Mode.
	OnChange func(Value)
}

// Controller is the selection state machine of one picker instance.
//
// It exclusively owns the selected value, the visible month cursor and the
// panel state. Every surface routes its events through it and renders from
// its accessors. Commits update the value optimistically and are forwarded
// to OnChange; the embedder's value stays canonical and is fed back with
// Reconcile.
//
// Controller is not thread-safe and should only be used from a single
// goroutine (typically the bubbletea UI event loop).
type Controller struct {
	mode     Mode
	bounds   Bounds
	value    Value
	visible  time.Time
	panel    PanelState
	onChange func(Value)
}

// New creates a controller with a closed panel and the visible month resolved
// from the initial value.
func New(cfg Config) *Controller {
	mode := cfg.Mode
	if mode != ModeRange {
		mode = ModeSingle
	}

	value := cfg.Value
	if value.Mode != mode {
		value = EmptyValue(mode)
	}

	bounds := NormalizeBounds(cfg.MinDate, cfg.MaxDate)
	if bounds.Empty() {
		utils.Warnf("picker bounds are empty: min %s is after max %s",
			bounds.Min.Format(time.DateOnly), bounds.Max.Format(time.DateOnly))
	}

	return &Controller{
		mode:     mode,
		bounds:   bounds,
		value:    value,
		visible:  ResolveVisibleMonth(value, bounds),
		panel:    PanelClosed,
		onChange: cfg.OnChange,
	}
}

// Mode returns the fixed selection mode.
func (c *Controller) Mode() Mode { return c.mode }

// Value returns the current value.
func (c *Controller) Value() Value { return c.value }

// Bounds returns the normalized bounds.
func (c *Controller) Bounds() Bounds { return c.bounds }

// VisibleMonth returns the first day of the month the surfaces display.
func (c *Controller) VisibleMonth() time.Time { return c.visible }

// Panel returns the panel state.
func (c *Controller) Panel() PanelState { return c.panel }

// IsOpen reports whether the selection panel is shown.
func (c *Controller) IsOpen() bool { return c.panel.IsOpen() }

// Invalid reports whether a present date of the value is out of bounds.
func (c *Controller) Invalid() bool { return IsValueInvalid(c.value, c.bounds) }

// FullyEntered reports whether the value has every date its mode needs.
func (c *Controller) FullyEntered() bool { return IsFullyEntered(c.value) }

// BoundsMessage describes the allowed window.
func (c *Controller) BoundsMessage() string { return BoundsMessage(c.bounds) }

// TooltipContent returns the warning shown next to the controls. It is empty
// unless the value is invalid and the panel is closed.
func (c *Controller) TooltipContent() string {
	if !c.Invalid() || c.IsOpen() {
		return ""
	}
	return c.BoundsMessage()
}

// Activate toggles the panel; it is bound to activating the control surface.
func (c *Controller) Activate() {
	c.panel = c.panel.Toggle()
}

// Apply closes the panel, keeping the committed value.
func (c *Controller) Apply() {
	c.panel = c.panel.Close()
}

// Dismiss closes the panel on an outside interaction reported by the panel host.
func (c *Controller) Dismiss() {
	c.panel = c.panel.Close()
}

// SelectDay commits a value emitted by the day grid. In range mode the whole
// pair is forwarded as emitted; the grid decides which endpoint a click
// affects. Values tagged with the other mode are ignored.
func (c *Controller) SelectDay(v Value) {
	if v.Mode != c.mode {
		utils.Debugf("picker: ignoring %s value from day grid in %s mode", v.Mode, c.mode)
		return
	}
	c.commit(v)
}

// SelectQuarter commits the pair emitted by a quarter shortcut and moves the
// visible month to the quarter's start. Shortcuts only exist in range mode
// inside the open panel.
func (c *Controller) SelectQuarter(r Range) {
	if c.mode != ModeRange {
		utils.Debugf("picker: ignoring quarter shortcut in %s mode", c.mode)
		return
	}
	if !c.IsOpen() {
		return
	}
	c.commit(Value{Mode: ModeRange, Range: r})
	seed := FromQuarter(r.Start)
	c.visible = ResolveVisibleMonth(Value{Mode: ModeRange, Range: seed}, c.bounds)
}

// Navigate moves the visible month cursor as the navigator pages.
func (c *Controller) Navigate(month time.Time) {
	if month.IsZero() {
		return
	}
	c.visible = MonthStart(month)
}

// EditDate commits the date parsed by the single-mode entry field.
// A zero date clears the value.
func (c *Controller) EditDate(d time.Time) {
	if c.mode != ModeSingle {
		utils.Debugf("picker: ignoring single-date edit in %s mode", c.mode)
		return
	}
	c.commit(SingleValue(d))
}

// EditStart commits the date parsed by the range start entry field.
func (c *Controller) EditStart(d time.Time) {
	if c.mode != ModeRange {
		utils.Debugf("picker: ignoring range start edit in %s mode", c.mode)
		return
	}
	c.commit(Value{Mode: ModeRange, Range: SetStart(c.value.Range, d)})
}

// EditEnd commits the date parsed by the range end entry field.
func (c *Controller) EditEnd(d time.Time) {
	if c.mode != ModeRange {
		utils.Debugf("picker: ignoring range end edit in %s mode", c.mode)
		return
	}
	c.commit(Value{Mode: ModeRange, Range: SetEnd(c.value.Range, d)})
}

// DropEndpoint commits the pair proposed by dragging endpoint e onto d.
func (c *Controller) DropEndpoint(e Endpoint, d time.Time) {
	if c.mode != ModeRange {
		utils.Debugf("picker: ignoring %s drop in %s mode", e, c.mode)
		return
	}
	if d.IsZero() {
		return
	}
	c.commit(Value{Mode: ModeRange, Range: ProposePair(c.value.Range, e, d)})
}

// Reconcile re-synchronizes the controller with the embedder's value and
// bounds. The embedder calls it whenever either changes.
//
// The value is adopted first, then the bounds, then the visible month is
// recomputed. The cursor only moves when the value is fully entered and the
// resolved month differs from the current one, so a partially typed range
// never yanks the navigator and repeated calls are idempotent. The panel
// state is never touched.
func (c *Controller) Reconcile(v Value, minDate, maxDate time.Time) {
	if v.Mode == c.mode {
		c.value = v
	} else {
		utils.Debugf("picker: reconcile ignored %s value in %s mode", v.Mode, c.mode)
	}
	c.bounds = NormalizeBounds(minDate, maxDate)

	if v.Mode != c.mode || !IsFullyEntered(v) {
		return
	}

	next := ResolveVisibleMonth(v, c.bounds)
	if SameMonth(next, c.visible) {
		return
	}
	utils.Debugf("picker: visible month %s -> %s", c.visible.Format("2006-01"), next.Format("2006-01"))
	c.visible = next
}

func (c *Controller) commit(v Value) {
	c.value = v
	if c.onChange != nil {
		c.onChange(v)
	}
}
