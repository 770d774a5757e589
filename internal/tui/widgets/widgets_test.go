package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonViewContainsLabelAndSuffix(t *testing.T) {
	b := NewButton("Check Spelling", ButtonOptions{}).WithSuffix("⣾")

	view := b.View()

	assert.Contains(t, view, "Check Spelling")
	assert.Contains(t, view, "⣾")
}

func TestButtonFocusUsesThickBorder(t *testing.T) {
	focused := NewButton("Check Spelling", ButtonOptions{Focus: true}).View()
	plain := NewButton("Check Spelling", ButtonOptions{}).View()

	assert.Contains(t, focused, "┏")
	assert.Contains(t, plain, "╭")
}

func TestButtonDisabledIgnoresFocus(t *testing.T) {
	view := NewButton("Clear", ButtonOptions{Variant: ButtonVariantSecondary, Disabled: true, Focus: true}).View()

	require.Contains(t, view, "Clear")
	assert.Contains(t, view, "╭")
	assert.NotContains(t, view, "┏")
}

func TestButtonGroupJoinsButtons(t *testing.T) {
	group := NewButtonGroup(
		NewButton("Check Spelling", ButtonOptions{}),
		NewButton("Clear", ButtonOptions{Variant: ButtonVariantSecondary}),
	)

	view := group.View()
	assert.Contains(t, view, "Check Spelling")
	assert.Contains(t, view, "Clear")
	assert.Equal(t, "", NewButtonGroup().View())
}

func TestAlertRendersTitleMessageAndHint(t *testing.T) {
	view := ErrorAlert("Timeout Error", "The spell checker took too long to respond.").View()

	assert.Contains(t, view, "Timeout Error")
	assert.Contains(t, view, "took too long")
	assert.Contains(t, view, "dismiss")
}

func TestAlertWidthWrapsMessage(t *testing.T) {
	message := strings.Repeat("word ", 30)
	view := NewAlert(message, AlertOptions{Variant: AlertVariantWarning, Width: 30}).View()

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, len([]rune(stripANSI(line))), 40)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
