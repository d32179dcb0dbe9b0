package widget

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"datepicker/internal/picker"
	"datepicker/internal/utils"
)

func fieldLabels(mode picker.Mode) []string {
	if mode == picker.ModeRange {
		return []string{"From", "To"}
	}
	return []string{"Date"}
}

func newInputs(opts Options) []textinput.Model {
	labels := fieldLabels(opts.Mode)
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = utils.DescribeLayout(opts.DateFormat)
		ti.Prompt = ""
		ti.Width = inputWidth(opts.Size)
		inputs[i] = ti
	}
	inputs[0].Focus()
	return inputs
}

// fieldDate returns the date entry field i currently shows for v.
func fieldDate(v picker.Value, i int) time.Time {
	if v.Mode == picker.ModeSingle {
		return v.Date
	}
	if i == 0 {
		return v.Range.Start
	}
	return v.Range.End
}

func formatField(d time.Time, layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layout)
}

func sameDate(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() == b.IsZero()
	}
	return picker.SameDay(a, b)
}

// commitField parses the text of entry field i and forwards it to the
// controller. Text that does not parse is kept in the field with an error.
func (m *Model) commitField(i int) {
	parsed, err := utils.ParseDate(m.inputs[i].Value(), m.opts.DateFormat)
	if err != nil {
		m.inputErr = err.Error()
		return
	}
	m.inputErr = ""

	if sameDate(parsed, fieldDate(m.ctrl.Value(), i)) {
		return
	}

	switch {
	case m.ctrl.Mode() == picker.ModeSingle:
		m.ctrl.EditDate(parsed)
	case i == 0:
		m.ctrl.EditStart(parsed)
	default:
		m.ctrl.EditEnd(parsed)
	}
}

// refreshInputs rewrites every entry field from the controller's value.
func (m *Model) refreshInputs() {
	v := m.ctrl.Value()
	for i := range m.inputs {
		m.inputs[i].SetValue(formatField(fieldDate(v, i), m.opts.DateFormat))
	}
}

func (m *Model) focusField(i int) {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	if !m.ctrl.IsOpen() {
		m.inputs[i].Focus()
	}
}
