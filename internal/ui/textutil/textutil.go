// Package textutil provides unicode-aware text measuring for TUI layout.
// Zone coordinates are computed from these widths, so they must agree with
// what the terminal draws.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended by Truncate.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies (no ANSI codes).
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Spaces returns n spaces, or "" for n <= 0.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// CenterStart returns the column at which content of the given width starts
// when centered in total columns; never negative.
func CenterStart(total, content int) int {
	if content >= total {
		return 0
	}
	return (total - content) / 2
}
