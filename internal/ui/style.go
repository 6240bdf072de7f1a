// Package ui provides the terminal user interface for the countdown timer.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/stigoleg/arc-timer/internal/countdown"
)

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Go        lipgloss.AdaptiveColor
	Halt      lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Text:      lipgloss.AdaptiveColor{Light: "#101010", Dark: "#FFFFFF"},
	Go:        lipgloss.AdaptiveColor{Light: "#00A000", Dark: "#00FF00"},
	Halt:      lipgloss.AdaptiveColor{Light: "#D00000", Dark: "#FF0000"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	InputBox   lipgloss.Style
	InputFocus lipgloss.Style
	DialFrame  lipgloss.Style
	DialFocus  lipgloss.Style
	Seconds    lipgloss.Style
	Button     lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Label: base.
			Foreground(defaultColors.Subtle),

		InputBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Subtle).
			Padding(0, 1),

		InputFocus: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 1),

		DialFrame: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()),

		DialFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight),

		Seconds: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Text),

		Button: base.
			Bold(true).
			Foreground(lipgloss.Color("#101010")),

		Status: base.
			Foreground(defaultColors.Subtle),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			Foreground(defaultColors.Error),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()

// ButtonColor returns the background color of the control button for action.
func ButtonColor(a countdown.Action) lipgloss.AdaptiveColor {
	if a == countdown.ActionStop {
		return defaultColors.Halt
	}
	return defaultColors.Go
}
