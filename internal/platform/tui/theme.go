package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// WatchTheme contains all configurable visual styles for the watch view.
type WatchTheme struct {
	// Board cells
	PlainCell  lipgloss.Style
	LadderCell lipgloss.Style
	SnakeCell  lipgloss.Style
	GoalCell   lipgloss.Style
	PawnCell   lipgloss.Style

	// HUD styles
	Title        lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDOvershoot lipgloss.Style
	WinBanner    lipgloss.Style

	// Move log
	LogLine lipgloss.Style
}

// DefaultWatchTheme returns the default visual theme.
func DefaultWatchTheme() WatchTheme {
	return WatchTheme{
		PlainCell:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // Medium gray
		LadderCell: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
		SnakeCell:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // Red
		GoalCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		PawnCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Reverse(true),

		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDValue:     lipgloss.NewStyle().Bold(true),
		HUDOvershoot: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // Orange
		WinBanner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),

		LogLine: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
