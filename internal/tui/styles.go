package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles shared by the table renderers and the
// interactive browser.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the standard campusctl palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),
	}
}

// StatusStyle picks a style for a lifecycle state string. Covers both
// resource and booking states.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	switch status {
	case "AVAILABLE", "CONFIRMED", "COMPLETED":
		return s.Success
	case "BOOKED", "MAINTENANCE", "PENDING":
		return s.Warning
	case "UNAVAILABLE", "CANCELLED":
		return s.Error
	default:
		return s.Cell
	}
}
