package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tolbek/spindle/internal/tui/theme"
)

// Column geometry. One terminal cell per row keeps the wheel math in
// whole cells; seven rows is the selection window the engine measures
// itself against.
const (
	wheelRows   = 7
	columnWidth = 14
	columnGap   = 2
)

// Styles are built after theme.Init has run, so they live behind
// functions instead of package vars.

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true).
		Width(columnWidth).
		Align(lipgloss.Center)
}

func columnStyle(focused bool) lipgloss.Style {
	border := theme.ColumnBorder
	if focused {
		border = theme.FocusedBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(columnWidth)
}

// rowStyle renders the terminal version of the wheel's tilt/scale
// curve: the center row is highlighted, rows fade with distance.
func rowStyle(offset int, active, disabled bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Width(columnWidth).
		Align(lipgloss.Center)

	switch {
	case disabled:
		style = style.Foreground(lipgloss.Color(theme.Disabled)).Strikethrough(true)
	case active:
		style = style.
			Foreground(lipgloss.Color(theme.ActiveFg)).
			Background(lipgloss.Color(theme.ActiveBg)).
			Bold(true)
	case offset == -1 || offset == 1:
		style = style.Foreground(lipgloss.Color(theme.NearFg))
	default:
		style = style.Foreground(lipgloss.Color(theme.FarFg))
	}
	return style
}

func footerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)
}
