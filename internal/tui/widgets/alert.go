package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the severity styling of an alert.
type AlertVariant int

const (
	AlertVariantWarning AlertVariant = iota
	AlertVariantError
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant     AlertVariant
	Title       string
	Dismissible bool
	Width       int
}

// Alert represents a message alert component
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{
		message: message,
		options: opts,
	}
}

// WithWidth sets the content width; zero or less leaves it unconstrained
func (a *Alert) WithWidth(width int) *Alert {
	a.options.Width = width
	return a
}

// View renders the alert
func (a *Alert) View() string {
	accent := a.accent()
	var content []string

	if a.options.Title != "" {
		content = append(content, lipgloss.NewStyle().Bold(true).Foreground(accent).Render(a.options.Title))
		content = append(content, "")
	}

	if a.message != "" {
		content = append(content, a.message)
	}

	if a.options.Dismissible {
		hint := lipgloss.NewStyle().Foreground(Palette.Muted).Italic(true).Render("enter/esc: dismiss")
		content = append(content, "", hint)
	}

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 3)
	if a.options.Width > 0 {
		style = style.Width(a.options.Width)
	}

	return style.Render(strings.Join(content, "\n"))
}

func (a *Alert) accent() lipgloss.Color {
	if a.options.Variant == AlertVariantError {
		return Palette.Error
	}
	return Palette.Warning
}

// ErrorAlert creates a dismissible error alert
func ErrorAlert(title, message string) *Alert {
	return NewAlert(message, AlertOptions{
		Variant:     AlertVariantError,
		Title:       title,
		Dismissible: true,
	})
}

// WarningAlert creates a dismissible warning alert
func WarningAlert(title, message string) *Alert {
	return NewAlert(message, AlertOptions{
		Variant:     AlertVariantWarning,
		Title:       title,
		Dismissible: true,
	})
}
