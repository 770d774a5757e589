package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/correcto/internal/tui/widgets"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.notice != nil {
		return m.renderNotice()
	}

	var content strings.Builder

	content.WriteString(titleStyle.Render(m.title))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render(inputLabel))
	content.WriteString("\n")
	content.WriteString(m.paneStyle(m.focus == focusInput).Render(m.input.View()))
	content.WriteString("\n")

	content.WriteString(m.renderButtons())
	content.WriteString("\n")

	content.WriteString(labelStyle.Render(resultsLabel))
	content.WriteString("\n")
	content.WriteString(m.paneStyle(false).Render(m.results.View()))
	content.WriteString("\n")

	if m.status != "" {
		content.WriteString(statusStyle.Render(m.status))
		content.WriteString("\n")
	}

	content.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return content.String()
}

func (m Model) paneStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedPaneStyle
	}
	return paneStyle
}

// renderButtons renders the Check Spelling and Clear buttons
func (m Model) renderButtons() string {
	check := widgets.NewButton(checkLabel, widgets.ButtonOptions{
		Variant:  widgets.ButtonVariantPrimary,
		Disabled: !m.checkEnabled,
		Focus:    m.focus == focusCheck,
	})
	if m.checking {
		check.WithSuffix(m.spinner.View())
	}

	clearButton := widgets.NewButton(clearLabel, widgets.ButtonOptions{
		Variant: widgets.ButtonVariantSecondary,
		Focus:   m.focus == focusClear,
	})

	return lipgloss.NewStyle().PaddingLeft(1).Render(widgets.NewButtonGroup(check, clearButton).View())
}

// renderNotice draws the modal notice centred over the screen
func (m Model) renderNotice() string {
	width := m.width / 2
	if width < 30 {
		width = m.width - 4
	}

	var alert *widgets.Alert
	switch m.notice.Kind {
	case NoticeWarning:
		alert = widgets.WarningAlert(m.notice.Title, m.notice.Message)
	default:
		alert = widgets.ErrorAlert(m.notice.Title, m.notice.Message)
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, alert.WithWidth(width).View())
}
