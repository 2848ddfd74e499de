package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds the Lip Gloss styles shared across the picker UI.
type Styles struct {
	Header            *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
	SelectedMarker    *lipgloss.Style
	Favorite          *lipgloss.Style
	Current           *lipgloss.Style
	Created           *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterText        *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	FormLabel         *lipgloss.Style
	FormError         *lipgloss.Style
	Empty             *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Favorite: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Current: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Created: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FormLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	FormError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
