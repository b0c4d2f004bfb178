package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// TruncateString truncates a string to the specified cell width, ANSI aware.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), Ellipsis)
}

// WrapString word-wraps s to width and returns at most maxLines lines, the last
// one truncated if text was cut. maxLines <= 0 means no limit.
func WrapString(s string, width, maxLines int) []string {
	if width <= 0 {
		return nil
	}
	lines := strings.Split(wordwrap.String(s, width), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = TruncateString(lines[maxLines-1]+" "+Ellipsis, width)
	}
	for i, line := range lines {
		lines[i] = TruncateString(strings.TrimRight(line, " "), width)
	}
	return lines
}

// StripANSI removes escape sequences so text can be restyled.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Blank replaces every cell of s with a space, preserving its footprint.
func Blank(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", lipgloss.Width(line))
	}
	return strings.Join(lines, "\n")
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
