// Package ui holds the shared lipgloss palette and styles for terminal
// output.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette (Ayu theme).
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"} // Blue
	ColorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"} // Green
	ColorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#e6b450"} // Yellow
	ColorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f26d78"} // Red
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#565b66"} // Gray
)

// Shared styles.
var (
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	Title = lipgloss.NewStyle().
		Bold(true)

	Value = lipgloss.NewStyle().
		Foreground(ColorPass)

	Warn = lipgloss.NewStyle().
		Foreground(ColorWarn)

	Dim = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ErrorPrefix = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFail)
)
