package tui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	colorBlue    = lipgloss.Color("#5F87FF")
	colorGreen   = lipgloss.Color("#5FAF5F")
	colorYellow  = lipgloss.Color("#D7AF5F")
	colorRed     = lipgloss.Color("#D75F5F")
	colorGray    = lipgloss.Color("#666666")
	colorDimGray = lipgloss.Color("#444444")
	colorWhite   = lipgloss.Color("#FFFFFF")
)

// Base styles reused by the view.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	panelTitleActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	readyStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	processingStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	answerStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	citationStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorDimGray)
)
