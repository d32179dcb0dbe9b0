package widget

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)

	focusedFieldStyle = fieldStyle.
				BorderForeground(lipgloss.Color("39"))

	invalidFieldStyle = fieldStyle.
				BorderForeground(lipgloss.Color("196"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	dayStyle = lipgloss.NewStyle()

	disabledDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))

	todayStyle = lipgloss.NewStyle().
			Underline(true)

	inRangeDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	selectedDayStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("39"))

	cursorDayStyle = lipgloss.NewStyle().
			Reverse(true)

	arrowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	quarterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeQuarterStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))
)
