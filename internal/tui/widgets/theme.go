package widgets

import "github.com/charmbracelet/lipgloss"

// Colors shared by every widget.
var Palette = struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
}{
	Primary: lipgloss.Color("42"),  // Green
	Accent:  lipgloss.Color("212"), // Pink
	Warning: lipgloss.Color("226"), // Yellow
	Error:   lipgloss.Color("196"), // Red
	Muted:   lipgloss.Color("245"), // Gray
	Text:    lipgloss.Color("252"),
}
