package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// resultsPane is the read-only output area. Its content changes only
// through Replace and Clear, which unlock it for the duration of the write.
type resultsPane struct {
	viewport viewport.Model
	lines    []string
	locked   bool
}

func newResultsPane(width, height int) resultsPane {
	return resultsPane{
		viewport: viewport.New(width, height),
		locked:   true,
	}
}

// Replace swaps the pane content for lines and scrolls to the top.
func (p *resultsPane) Replace(lines []string) {
	p.locked = false
	p.lines = append([]string(nil), lines...)
	p.viewport.SetContent(strings.Join(p.lines, "\n"))
	p.viewport.GotoTop()
	p.locked = true
}

// Clear empties the pane.
func (p *resultsPane) Clear() {
	p.Replace(nil)
}

// Editable reports whether the pane currently accepts writes.
func (p resultsPane) Editable() bool {
	return !p.locked
}

// Content returns the current text of the pane.
func (p resultsPane) Content() string {
	return strings.Join(p.lines, "\n")
}

// Lines returns a copy of the pane content.
func (p resultsPane) Lines() []string {
	return append([]string(nil), p.lines...)
}

// SetSize resizes the viewport without touching content.
func (p *resultsPane) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// Scroll forwards navigation keys to the viewport.
func (p *resultsPane) Scroll(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p resultsPane) View() string {
	return p.viewport.View()
}
