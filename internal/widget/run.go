package widget

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"datepicker/internal/picker"
	"datepicker/internal/utils"
)

// Run starts the interactive picker and returns the confirmed value.
// Every commit made while the picker runs is passed to rec when it is not nil.
// Returns utils.ErrPickCancelled if the user leaves without confirming.
func Run(opts Options, rec Recorder, programOpts ...tea.ProgramOption) (picker.Value, error) {
	model := New(opts, rec)

	programOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	p := tea.NewProgram(model, programOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return picker.Value{}, fmt.Errorf("error running date picker: %w", err)
	}

	switch m := finalModel.(type) {
	case Model:
		if m.Cancelled() || !m.Confirmed() {
			return m.Value(), utils.ErrPickCancelled()
		}
		return m.Value(), nil
	default:
		return picker.Value{}, fmt.Errorf("unexpected model type")
	}
}
