package ui

import "github.com/muesli/reflow/truncate"

// Truncate shortens s to at most width cells, ending in "...".
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	if visibleWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return truncate.String(s, uint(width))
	}
	return truncate.StringWithTail(s, uint(width), "...")
}
