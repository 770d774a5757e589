package checker

import (
	"strings"
	"unicode/utf8"
)

const (
	// SuggestionMarker identifies a header line for one misspelled word.
	SuggestionMarker = "Suggestions for"
	// SuggestionPrefix starts every suggested correction line.
	SuggestionPrefix = "-"
	// NoSuggestionsNotice is appended when the output has no header line.
	NoSuggestionsNotice = "No suggestions found for any misspelled word."
)

// LineKind classifies one line of checker output.
type LineKind int

const (
	LinePlain LineKind = iota
	LineHeader
	LineSuggestion
)

// Classify reports how a single output line is rendered.
func Classify(line string) LineKind {
	switch {
	case strings.Contains(line, SuggestionMarker):
		return LineHeader
	case strings.HasPrefix(line, SuggestionPrefix):
		return LineSuggestion
	default:
		return LinePlain
	}
}

// Format turns raw checker stdout into display lines. Headers and plain
// lines pass through unchanged, suggestions get indent prepended, and the
// no-suggestions notice is appended when no header appears anywhere.
func Format(stdout, indent string) []string {
	lines := splitLines(stdout)
	out := make([]string, 0, len(lines)+2)

	for _, line := range lines {
		if Classify(line) == LineSuggestion {
			out = append(out, indent+line)
			continue
		}
		out = append(out, line)
	}

	if !strings.Contains(stdout, SuggestionMarker) {
		out = append(out, "", NoSuggestionsNotice)
	}

	return out
}

// splitLines breaks s at every line boundary: \n, \r, \r\n, \v, \f,
// the file/group/record separators \x1c-\x1e, NEL, and the Unicode line and
// paragraph separators. A trailing boundary does not produce an empty line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBoundary(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
