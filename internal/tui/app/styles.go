package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/correcto/internal/tui/widgets"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(widgets.Palette.Primary).
			PaddingLeft(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(widgets.Palette.Text).
			PaddingLeft(1)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(widgets.Palette.Muted).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(widgets.Palette.Accent)

	statusStyle = lipgloss.NewStyle().
			Foreground(widgets.Palette.Muted).
			Italic(true).
			PaddingLeft(1)

	footerStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(widgets.Palette.Primary)
)
