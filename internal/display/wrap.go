package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

// Wrap word-wraps text to width, preserving ANSI escape sequences. A width
// below one falls back to DefaultWidth.
func Wrap(text string, width int) string {
	if width < 1 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Name title-cases an actor id for prose.
func Name(id string) string {
	return cases.Title(language.English, cases.NoLower).String(id)
}
