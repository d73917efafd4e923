// Package ui provides the terminal dashboard for the weekly leaderboard.
package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Gold      lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

// DefaultColors returns the default color scheme
var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Gold:      lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#FFD75F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title       lipgloss.Style
	Countdown   lipgloss.Style
	Meta        lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Prize       lipgloss.Style
	PrizeAmount lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.Copy().
			Bold(true).
			Foreground(defaultColors.Highlight),

		Countdown: base.Copy().
			Bold(true).
			Foreground(defaultColors.Special),

		Meta: base.Copy().
			Foreground(defaultColors.Subtle),

		TabActive: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Underline(true).
			Foreground(defaultColors.Highlight),

		TabInactive: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(defaultColors.Subtle),

		Prize: base.Copy().
			Foreground(defaultColors.Subtle),

		PrizeAmount: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Gold),

		Status: base.Copy().
			Foreground(defaultColors.Subtle),

		Error: base.Copy().
			Foreground(defaultColors.Error),

		Help: base.Copy().
			Foreground(defaultColors.Subtle),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()

// tableStyles adapts the stock table look to the dashboard palette.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(defaultColors.Subtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Bold(true).
		Foreground(defaultColors.Highlight)
	return s
}
