package widget

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"datepicker/internal/picker"
	"datepicker/internal/utils"
)

const recordTimeout = 5 * time.Second

// recordedMsg reports the outcome of persisting one committed value
type recordedMsg struct {
	id  int64
	err error
}

// Model is the bubbletea model of one picker instance
type Model struct {
	opts   Options
	ctrl   *picker.Controller
	sess   *session
	rec    Recorder
	keys   keyMap
	help   help.Model
	inputs []textinput.Model
	focus  int
	cursor time.Time

	inputErr  string
	inflight  int
	confirmed bool
	cancelled bool
	quitting  bool
	width     int
	height    int
}

// New creates a picker model. rec may be nil when commits are not persisted.
func New(opts Options, rec Recorder) Model {
	opts = opts.withDefaults()

	sess := &session{
		value:   opts.Value,
		minDate: opts.MinDate,
		maxDate: opts.MaxDate,
	}
	ctrl := picker.New(picker.Config{
		Mode:     opts.Mode,
		MinDate:  opts.MinDate,
		MaxDate:  opts.MaxDate,
		Value:    opts.Value,
		OnChange: sess.onChange,
	})
	if sess.value.Mode != ctrl.Mode() {
		sess.value = ctrl.Value()
	}

	m := Model{
		opts:   opts,
		ctrl:   ctrl,
		sess:   sess,
		rec:    rec,
		keys:   newKeyMap(opts.Mode).forPanel(picker.PanelClosed, opts.Mode),
		help:   help.New(),
		inputs: newInputs(opts),
		cursor: cursorFor(ctrl.VisibleMonth(), ctrl.Value(), ctrl.Bounds()),
	}
	m.refreshInputs()
	return m
}

// Value returns the canonical value, the last one the controller committed.
func (m Model) Value() picker.Value { return m.sess.value }

// Controller exposes the selection state machine.
func (m Model) Controller() *picker.Controller { return m.ctrl }

// Confirmed reports whether the user confirmed the selection.
func (m Model) Confirmed() bool { return m.confirmed }

// Cancelled reports whether the user left without confirming.
func (m Model) Cancelled() bool { return m.cancelled }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case recordedMsg:
		return m.handleRecorded(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Confirm):
			return m.handleConfirm()

		case key.Matches(msg, m.keys.Toggle):
			return m.handleToggle()
		}

		if m.ctrl.IsOpen() {
			return m.handlePanelKey(msg)
		}
		return m.handleFieldKey(msg)
	}

	if m.ctrl.IsOpen() {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleRecorded(msg recordedMsg) (tea.Model, tea.Cmd) {
	m.inflight--
	if msg.err != nil {
		utils.Warnf("Failed to record selection: %v", msg.err)
	} else {
		utils.Debugf("Recorded selection #%d", msg.id)
	}

	if m.confirmed && m.inflight <= 0 {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleConfirm() (tea.Model, tea.Cmd) {
	if !m.ctrl.IsOpen() {
		m.commitField(m.focus)
		if m.inputErr != "" {
			return m, nil
		}
	}

	cmd := m.afterCommit()
	m.confirmed = true
	if m.inflight == 0 {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) handleToggle() (tea.Model, tea.Cmd) {
	if !m.ctrl.IsOpen() {
		m.commitField(m.focus)
	}
	m.ctrl.Activate()

	cmd := m.afterCommit()
	if m.ctrl.IsOpen() {
		m.inputs[m.focus].Blur()
		m.cursor = cursorFor(m.ctrl.VisibleMonth(), m.ctrl.Value(), m.ctrl.Bounds())
	} else {
		m.focusField(m.focus)
	}
	m.keys = m.keys.forPanel(m.ctrl.Panel(), m.ctrl.Mode())
	return m, cmd
}

func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		m.commitField(m.focus)
		return m, m.afterCommit()

	case key.Matches(msg, m.keys.NextField):
		m.commitField(m.focus)
		cmd := m.afterCommit()
		if m.inputErr == "" {
			next := (m.focus + 1) % len(m.inputs)
			if msg.String() == "shift+tab" {
				next = (m.focus + len(m.inputs) - 1) % len(m.inputs)
			}
			m.focusField(next)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.Dismiss()
		return m.panelClosed()

	case key.Matches(msg, m.keys.Apply):
		m.ctrl.Apply()
		return m.panelClosed()

	case key.Matches(msg, m.keys.Select):
		if m.ctrl.Bounds().Contains(m.cursor) {
			m.ctrl.SelectDay(gridSelection(m.ctrl.Value(), m.cursor))
		}
		return m, m.afterCommit()

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)

	case key.Matches(msg, m.keys.PrevMonth):
		m.stepMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.stepMonth(1)

	case key.Matches(msg, m.keys.Quarter):
		m.selectQuarter(int(msg.String()[0] - '0'))
		return m, m.afterCommit()

	case key.Matches(msg, m.keys.DropStart):
		m.ctrl.DropEndpoint(picker.EndpointStart, m.cursor)
		return m, m.afterCommit()
	case key.Matches(msg, m.keys.DropEnd):
		m.ctrl.DropEndpoint(picker.EndpointEnd, m.cursor)
		return m, m.afterCommit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) panelClosed() (tea.Model, tea.Cmd) {
	m.focusField(m.focus)
	m.keys = m.keys.forPanel(picker.PanelClosed, m.ctrl.Mode())
	return m, nil
}

// afterCommit feeds the canonical value back to the controller and issues
// one record command per queued commit.
func (m *Model) afterCommit() tea.Cmd {
	committed := m.sess.drain()
	if len(committed) == 0 {
		return nil
	}

	m.ctrl.Reconcile(m.sess.value, m.sess.minDate, m.sess.maxDate)
	m.refreshInputs()
	m.syncCursor()

	if m.rec == nil {
		return nil
	}
	b := picker.NormalizeBounds(m.sess.minDate, m.sess.maxDate)
	cmds := make([]tea.Cmd, 0, len(committed))
	for _, v := range committed {
		cmds = append(cmds, recordCmd(m.rec, v, picker.IsValueInvalid(v, b)))
		m.inflight++
	}
	return tea.Batch(cmds...)
}

func recordCmd(rec Recorder, v picker.Value, invalid bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		id, err := rec.Record(ctx, v, invalid)
		return recordedMsg{id: id, err: err}
	}
}

func (m *Model) syncCursor() {
	if !picker.SameMonth(m.cursor, m.ctrl.VisibleMonth()) {
		m.cursor = cursorFor(m.ctrl.VisibleMonth(), m.ctrl.Value(), m.ctrl.Bounds())
	}
}

// moveCursor moves the grid cursor by days, paging the navigator when it
// leaves the visible month. Days outside the bounds cannot be reached.
func (m *Model) moveCursor(days int) {
	next := m.cursor.AddDate(0, 0, days)
	if !m.ctrl.Bounds().Contains(next) {
		return
	}
	m.cursor = next
	if !picker.SameMonth(next, m.ctrl.VisibleMonth()) {
		m.ctrl.Navigate(next)
	}
}

func (m *Model) stepMonth(delta int) {
	visible := m.ctrl.VisibleMonth()
	if !picker.CanStepMonth(visible, delta, m.ctrl.Bounds()) {
		return
	}
	m.ctrl.Navigate(picker.StepMonth(visible, delta))
	m.cursor = cursorFor(m.ctrl.VisibleMonth(), m.ctrl.Value(), m.ctrl.Bounds())
}

func (m *Model) selectQuarter(n int) {
	visible := m.ctrl.VisibleMonth()
	for _, q := range picker.Quarters(visible.Year(), m.ctrl.Bounds()) {
		if q.Number == n {
			m.ctrl.SelectQuarter(q.Range())
			return
		}
	}
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	title := "Pick a date"
	if m.ctrl.Mode() == picker.ModeRange {
		title = "Pick a date range"
	}
	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n\n")

	controls := m.renderControls()
	helpView := m.help.View(m.keys)
	if m.ctrl.IsOpen() {
		panel := m.renderPanel()
		reserved := 2 + lipgloss.Height(helpView) + 1
		placement := choosePlacement(m.width, m.height-reserved, controls, panel)
		s.WriteString(placePanel(placement, controls, panel))
	} else {
		s.WriteString(controls)
	}

	if m.inputErr != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(m.inputErr))
	}

	s.WriteString("\n\n")
	s.WriteString(helpView)

	return s.String()
}

func (m Model) controlsProps() ControlsProps {
	text := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		text[i] = in.Value()
	}
	return ControlsProps{
		Value:   m.ctrl.Value(),
		Text:    text,
		Focus:   m.focus,
		Invalid: m.ctrl.Invalid(),
		Tooltip: m.ctrl.TooltipContent(),
		Open:    m.ctrl.IsOpen(),
	}
}

func (m Model) renderControls() string {
	props := m.controlsProps()
	if m.opts.RenderControls != nil {
		return m.opts.RenderControls(props)
	}

	labels := fieldLabels(m.ctrl.Mode())
	fields := make([]string, 0, len(m.inputs))
	for i, in := range m.inputs {
		style := fieldStyle
		d := fieldDate(props.Value, i)
		switch {
		case !d.IsZero() && picker.IsInvalid(d, m.ctrl.Bounds()):
			style = invalidFieldStyle
		case i == m.focus && !props.Open:
			style = focusedFieldStyle
		}
		fields = append(fields, lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render(labels[i]),
			style.Render(in.View()),
		))
	}

	indicator := "▾"
	if props.Open {
		indicator = "▴"
	}
	items := make([]string, 0, 2*len(fields)+1)
	for i, f := range fields {
		if i > 0 {
			items = append(items, " ")
		}
		items = append(items, f)
	}
	items = append(items, " ", arrowStyle.Render(indicator))
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, items...)

	if props.Tooltip != "" {
		row += "\n" + warningStyle.Render("⚠ "+props.Tooltip)
	}
	return row
}

func (m Model) renderPanel() string {
	month := m.ctrl.VisibleMonth()
	b := m.ctrl.Bounds()
	v := m.ctrl.Value()

	parts := []string{
		renderNavigator(month, b),
		renderGrid(month, m.cursor, m.opts.Now(), v, b),
	}
	if m.ctrl.Mode() == picker.ModeRange {
		if q := renderQuarters(month.Year(), v, b); q != "" {
			parts = append(parts, "", q)
		}
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// choosePlacement returns the first preferred placement that fits the
// terminal. An unknown terminal size fits everything.
func choosePlacement(width, height int, controls, panel string) picker.Placement {
	if width <= 0 || height <= 0 {
		return picker.DefaultPlacements[0]
	}

	cw, ch := lipgloss.Size(controls)
	pw, ph := lipgloss.Size(panel)
	for _, p := range picker.DefaultPlacements {
		switch p {
		case picker.PlacementLeftCenter, picker.PlacementRightCenter:
			if max(ch, ph) <= height && cw+pw+1 <= width {
				return p
			}
		default:
			if ch+ph <= height && max(cw, pw) <= width {
				return p
			}
		}
	}
	return picker.DefaultPlacements[0]
}

func placePanel(p picker.Placement, controls, panel string) string {
	align := lipgloss.Left
	switch p {
	case picker.PlacementUpCenter, picker.PlacementDownCenter:
		align = lipgloss.Center
	case picker.PlacementUpStartRight, picker.PlacementDownStartRight:
		align = lipgloss.Right
	}

	switch p {
	case picker.PlacementLeftCenter:
		return lipgloss.JoinHorizontal(lipgloss.Center, panel, " ", controls)
	case picker.PlacementRightCenter:
		return lipgloss.JoinHorizontal(lipgloss.Center, controls, " ", panel)
	case picker.PlacementUpCenter, picker.PlacementUpStartLeft, picker.PlacementUpStartRight:
		return lipgloss.JoinVertical(align, panel, controls)
	default:
		return lipgloss.JoinVertical(align, controls, panel)
	}
}
