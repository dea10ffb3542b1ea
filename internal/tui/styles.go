package tui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the browser.
var (
	colorCyan   = lipgloss.Color("#00FFFF")
	colorGreen  = lipgloss.Color("#00FF00")
	colorYellow = lipgloss.Color("#FFFF00")
	colorGray   = lipgloss.Color("#666666")
	colorDim    = lipgloss.Color("#444444")
	colorWhite  = lipgloss.Color("#FFFFFF")
)

// Base styles reused by the views.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	statsStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	speakerStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	dividerStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
