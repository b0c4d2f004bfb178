package utils

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "", TruncateString("anything", 0))

	got := TruncateString("Turn right onto Elm Avenue", 10)
	assert.LessOrEqual(t, lipgloss.Width(got), 10)
	assert.Contains(t, got, Ellipsis)
}

func TestWrapString(t *testing.T) {
	lines := WrapString("Turn right onto Elm Avenue toward the harbor", 12, 2)
	assert.Len(t, lines, 2)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 12)
	}
	assert.Nil(t, WrapString("x", 0, 1))
}

func TestBlankAndPad(t *testing.T) {
	assert.Equal(t, "   \n  ", Blank("abc\nde"))
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, "plain", StripANSI(lipgloss.NewStyle().Bold(true).Render("plain")))
}
