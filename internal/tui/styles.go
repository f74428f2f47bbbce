package tui

import "github.com/charmbracelet/lipgloss"

const cardWidth = 24

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3B30"))

	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Height(5).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	cursorCardStyle   = cardStyle.BorderForeground(lipgloss.Color("#2B7FFF"))
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("#FF3B30")).Bold(true)

	kindStyle = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			Width(3*(cardWidth+4)-4).
			Padding(1, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#2B7FFF"))

	pillStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2B7FFF")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3B30"))
	linkStyle   = lipgloss.NewStyle().Underline(true)
)
