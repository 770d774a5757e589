package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/correcto/internal/config"
)

// focusTarget identifies the control receiving key input.
type focusTarget int

const (
	focusInput focusTarget = iota
	focusCheck
	focusClear
	focusCount
)

const (
	inputLabel   = "Enter text to check for spelling:"
	resultsLabel = "Spell Check Results and Suggestions:"
	checkLabel   = "Check Spelling"
	clearLabel   = "Clear"

	defaultWidth  = 80
	defaultHeight = 24
	minPaneHeight = 3
	minPaneWidth  = 20
)

// Options configures the view.
type Options struct {
	Title string
}

// Model is the single controller owning every piece of UI state. It is only
// mutated on the Bubble Tea event loop; checks run as commands and report
// back through messages.
type Model struct {
	checker Checker
	title   string

	// Widgets
	input   textarea.Model
	results resultsPane
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	// UI state
	focus        focusTarget
	checkEnabled bool
	checking     bool
	notice       *Notice
	status       string

	// ctx is cancelled when the program quits, aborting a running check.
	ctx    context.Context
	cancel context.CancelFunc

	// Dimensions
	width  int
	height int
}

// NewModel creates the checker view.
func NewModel(svc Checker, opts Options) Model {
	title := opts.Title
	if title == "" {
		title = config.DefaultTitle
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		checker:      svc,
		title:        title,
		input:        ta,
		results:      newResultsPane(defaultWidth-4, minPaneHeight),
		spinner:      s,
		help:         help.New(),
		keys:         newKeyMap(),
		focus:        focusInput,
		checkEnabled: true,
		ctx:          ctx,
		cancel:       cancel,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// CheckEnabled reports whether the Check Spelling button accepts presses.
func (m Model) CheckEnabled() bool {
	return m.checkEnabled
}

// Checking reports whether a check is in flight.
func (m Model) Checking() bool {
	return m.checking
}

// Notice returns the pending modal notice, if any.
func (m Model) Notice() *Notice {
	return m.notice
}

// InputText returns the content of the input pane.
func (m Model) InputText() string {
	return m.input.Value()
}

// ResultsText returns the content of the results pane.
func (m Model) ResultsText() string {
	return m.results.Content()
}

// ResultsEditable reports whether the results pane accepts writes.
func (m Model) ResultsEditable() bool {
	return m.results.Editable()
}

// resize lays the two panes out to share the vertical space.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// title(2) + two labels(2) + two pane borders(4) + buttons(3) + status(1) + footer(2)
	const chrome = 14
	paneHeight := (height - chrome) / 2
	if paneHeight < minPaneHeight {
		paneHeight = minPaneHeight
	}

	paneWidth := width - 4
	if paneWidth < minPaneWidth {
		paneWidth = minPaneWidth
	}

	m.input.SetWidth(paneWidth)
	m.input.SetHeight(paneHeight)
	m.results.SetSize(paneWidth, paneHeight)
	m.help.Width = width
}

// setFocus moves key input to target, focusing or blurring the textarea.
func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	if target == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}
