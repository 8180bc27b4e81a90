// Package render provides text fitting utilities for panel contents.
package render

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters other than tab, which would otherwise
// move the terminal cursor and break the panel grid.
func Sanitize(s string) string {
	if strings.IndexFunc(s, isDropped) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isDropped(r) {
			return -1
		}
		return r
	}, s)
}

func isDropped(r rune) bool {
	return r != '\t' && unicode.IsControl(r)
}

// Truncate shortens s to fit within maxWidth cells, ending in "…" when cut.
// Wide characters (CJK, emoji) are measured with runewidth.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills s with spaces to reach width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fit truncates and pads every line to exactly width cells and returns
// exactly height lines, dropping extras and padding with blank lines.
func Fit(lines []string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	out := make([]string, height)
	blank := strings.Repeat(" ", max(width, 0))
	for i := range out {
		if i < len(lines) {
			out[i] = Pad(Truncate(lines[i], width), width)
			continue
		}
		out[i] = blank
	}
	return out
}

// Block fills a width x height area with spaces.
func Block(width, height int) string {
	return strings.Join(Fit(nil, width, height), "\n")
}

// Center places s in the middle of width cells, truncating if needed.
func Center(s string, width int) string {
	s = Truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
