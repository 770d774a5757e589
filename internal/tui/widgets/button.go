package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the colour scheme of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Focus    bool
	// Suffix is rendered after the label, e.g. a spinner frame.
	Suffix string
}

// Button represents a clickable button component
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// WithSuffix sets trailing content rendered inside the button
func (b *Button) WithSuffix(suffix string) *Button {
	b.options.Suffix = suffix
	return b
}

// View renders the button
func (b *Button) View() string {
	label := b.label
	if b.options.Suffix != "" {
		label = label + " " + b.options.Suffix
	}
	return b.buildStyle().Render(label)
}

// buildStyle calculates the button style based on current options
func (b *Button) buildStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder())

	switch b.options.Variant {
	case ButtonVariantSecondary:
		style = style.Foreground(Palette.Text).BorderForeground(Palette.Muted)
	default:
		style = style.Foreground(Palette.Primary).BorderForeground(Palette.Primary)
	}

	if b.options.Disabled {
		style = style.Faint(true).
			Foreground(Palette.Muted).
			BorderForeground(Palette.Muted)
	} else if b.options.Focus {
		style = style.BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Palette.Accent).
			Foreground(Palette.Accent)
	}

	return style
}

// ButtonGroup represents a horizontal group of buttons
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{
		buttons: buttons,
		spacing: 2,
	}
}

// View renders the button group
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	parts := make([]string, 0, len(bg.buttons)*2)
	spacer := strings.Repeat(" ", bg.spacing)
	for i, button := range bg.buttons {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, button.View())
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
