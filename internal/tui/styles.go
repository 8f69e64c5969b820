package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)

	columnBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	columnBoxFocusStyle = columnBoxStyle.
				BorderForeground(colorFocus)
	columnTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	cellValueStyle   = lipgloss.NewStyle().Foreground(colorText)

	radioOnStyle     = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	radioOffStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	radioUnsetStyle  = lipgloss.NewStyle().Foreground(colorDim)
	overallBoxStyle  = columnBoxStyle
	terminalBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(1, 3).
				Foreground(colorMuted)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	cursorStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
)
