package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	correctoerrors "github.com/alexisbeaulieu97/correcto/pkg/errors"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.checking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case checkCompletedMsg:
		m.finishCheck()
		m.results.Replace(msg.Report.Lines)
		m.status = msg.Report.Summary()
		return m, nil

	case checkFailedMsg:
		m.finishCheck()
		m.notice = noticeFromError(msg.Err)
		m.status = ""
		return m, nil
	}

	// Anything else (cursor blink, etc.) belongs to the textarea.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress routes keys to the notice, global bindings or the focused control.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.cancel()
		return m, tea.Quit
	}

	if m.notice != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notice = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Check):
		return m.startCheck()

	case key.Matches(msg, m.keys.Clear):
		m.clear()
		return m, nil

	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		return m, m.results.Scroll(msg)
	}

	switch m.focus {
	case focusCheck:
		if key.Matches(msg, m.keys.Activate) {
			return m.startCheck()
		}
		return m, nil
	case focusClear:
		if key.Matches(msg, m.keys.Activate) {
			m.clear()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startCheck validates the input, disables the check button and dispatches
// the checker. Blank input raises a warning without running anything.
func (m Model) startCheck() (tea.Model, tea.Cmd) {
	if !m.checkEnabled || m.checking {
		return m, nil
	}

	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.notice = noticeFromError(correctoerrors.NewInputEmptyError())
		return m, nil
	}

	m.checkEnabled = false
	m.checking = true
	m.status = "Checking..."

	return m, tea.Batch(m.spinner.Tick, checkCmd(m.ctx, m.checker, text))
}

// finishCheck restores the button after any outcome.
func (m *Model) finishCheck() {
	m.checking = false
	m.checkEnabled = true
}

// clear empties both panes. The results pane stays read-only afterwards.
func (m *Model) clear() {
	m.input.Reset()
	m.results.Clear()
	m.status = ""
}
