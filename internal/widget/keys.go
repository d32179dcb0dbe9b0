package widget

import (
	"github.com/charmbracelet/bubbles/key"

	"datepicker/internal/picker"
)

type keyMap struct {
	Toggle    key.Binding
	Dismiss   key.Binding
	Apply     key.Binding
	Select    key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Quarter   key.Binding
	DropStart key.Binding
	DropEnd   key.Binding
	NextField key.Binding
	Commit    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Help      key.Binding
}

func newKeyMap(mode picker.Mode) keyMap {
	k := keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("f2", "ctrl+o"),
			key.WithHelp("f2", "calendar"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Apply: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "apply"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "day")),
		Right: key.NewBinding(key.WithKeys("right", "l")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "week")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup", "["),
			key.WithHelp("[/]", "month"),
		),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]")),
		Quarter: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "quarter"),
		),
		DropStart: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S/E", "move start/end here"),
		),
		DropEnd: key.NewBinding(key.WithKeys("E")),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "set"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}

	if mode != picker.ModeRange {
		k.Quarter.SetEnabled(false)
		k.DropStart.SetEnabled(false)
		k.DropEnd.SetEnabled(false)
		k.NextField.SetEnabled(false)
	}
	return k
}

// forPanel returns the bindings that are active in the given panel state.
func (k keyMap) forPanel(panel picker.PanelState, mode picker.Mode) keyMap {
	open := panel.IsOpen()
	panelOnly := []*key.Binding{
		&k.Dismiss, &k.Apply, &k.Select, &k.Left, &k.Right, &k.Up, &k.Down,
		&k.PrevMonth, &k.NextMonth, &k.Help,
	}
	for _, b := range panelOnly {
		b.SetEnabled(open)
	}

	rangeOnly := []*key.Binding{&k.Quarter, &k.DropStart, &k.DropEnd}
	for _, b := range rangeOnly {
		b.SetEnabled(open && mode == picker.ModeRange)
	}

	k.Commit.SetEnabled(!open)
	k.NextField.SetEnabled(!open && mode == picker.ModeRange)
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Commit, k.NextField, k.Select, k.Apply, k.Dismiss, k.Confirm, k.Help}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Left, k.Up, k.PrevMonth},
		{k.Quarter, k.DropStart, k.Apply, k.Dismiss},
		{k.Toggle, k.Confirm, k.Cancel, k.Help},
	}
}
