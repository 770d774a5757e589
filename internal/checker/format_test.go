package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIndentsSuggestionsUnderHeader(t *testing.T) {
	stdout := "Suggestions for 'speling':\n- spelling\n- spieling\n"

	lines := Format(stdout, "    ")

	require.Equal(t, []string{
		"Suggestions for 'speling':",
		"    - spelling",
		"    - spieling",
	}, lines)
}

func TestFormatAppendsNoticeWithoutHeader(t *testing.T) {
	stdout := "All words look fine.\n"

	lines := Format(stdout, "    ")

	require.Equal(t, []string{
		"All words look fine.",
		"",
		NoSuggestionsNotice,
	}, lines)
	assert.Equal(t, NoSuggestionsNotice, lines[len(lines)-1])
}

func TestFormatEmptyOutputOnlyHasNotice(t *testing.T) {
	lines := Format("", "    ")
	require.Equal(t, []string{"", NoSuggestionsNotice}, lines)
}

func TestFormatHeaderMarkerAnywhereInLine(t *testing.T) {
	stdout := "Word 3: Suggestions for 'teh'\n- the\nplain text\n"

	lines := Format(stdout, "\t")

	require.Equal(t, []string{
		"Word 3: Suggestions for 'teh'",
		"\t- the",
		"plain text",
	}, lines)
}

func TestFormatDashLinesWithoutHeaderStillIndented(t *testing.T) {
	lines := Format("-orphan\n", "  ")
	require.Equal(t, []string{"  -orphan", "", NoSuggestionsNotice}, lines)
}

func TestFormatHandlesCRLF(t *testing.T) {
	stdout := "Suggestions for 'wrod':\r\n- word\r\n"

	lines := Format(stdout, "    ")

	require.Equal(t, []string{"Suggestions for 'wrod':", "    - word"}, lines)
}

func TestFormatSplitsOnEveryLineBoundary(t *testing.T) {
	lines := Format("Suggestions for 'a':\f- b\n", "    ")
	require.Equal(t, []string{"Suggestions for 'a':", "    - b"}, lines)

	stdout := "Suggestions for 'x':\v- y\x1c- z\u2028plain\u0085-w\r-v\u2029"
	lines = Format(stdout, "  ")
	require.Equal(t, []string{"Suggestions for 'x':", "  - y", "  - z", "plain", "  -w", "  -v"}, lines)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"no terminator", "a", []string{"a"}},
		{"single trailing newline dropped", "a\n", []string{"a"}},
		{"second trailing newline kept as blank", "a\n\n", []string{"a", ""}},
		{"crlf is one boundary", "a\r\nb", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"lfcr is two boundaries", "a\n\rb", []string{"a", "", "b"}},
		{"form feed and vertical tab", "a\fb\vc", []string{"a", "b", "c"}},
		{"separators", "a\x1db\x1ec", []string{"a", "b", "c"}},
		{"unicode separators", "a\u2028b\u2029", []string{"a", "b"}},
		{"tab is not a boundary", "a\tb", []string{"a\tb"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, splitLines(tt.input))
		})
	}
}

func TestFormatKeepsInteriorBlankLines(t *testing.T) {
	stdout := "Suggestions for 'a':\n- b\n\nSuggestions for 'c':\n- d"

	lines := Format(stdout, "    ")

	require.Equal(t, []string{
		"Suggestions for 'a':",
		"    - b",
		"",
		"Suggestions for 'c':",
		"    - d",
	}, lines)
}

func TestClassify(t *testing.T) {
	cases := map[string]LineKind{
		"Suggestions for 'x':": LineHeader,
		"- fix":                LineSuggestion,
		"-":                    LineSuggestion,
		" - indented":          LinePlain,
		"":                     LinePlain,
		"-Suggestions for":     LineHeader,
	}
	for line, want := range cases {
		assert.Equal(t, want, Classify(line), "line %q", line)
	}
}
