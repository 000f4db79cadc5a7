// Package textutil measures and fits text to terminal cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut short by Truncate.
const Ellipsis = "…"

// Width is the number of cells s occupies once escape codes are stripped.
func Width(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// Truncate fits s into maxWidth cells, ending in Ellipsis when it had to cut.
// Escape codes in s are preserved.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// PadRight fills s with spaces to exactly width cells, truncating when wider.
func PadRight(s string, width int) string {
	w := Width(s)
	if w > width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// SingleLine collapses newlines and tabs so user text cannot break a row.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
