package panels

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"navhud/internal/navigation"
)

var maneuverGlyphs = map[navigation.ManeuverDirection]string{
	navigation.DirectionStraight:    "↑",
	navigation.DirectionLeft:        "←",
	navigation.DirectionRight:       "→",
	navigation.DirectionSlightLeft:  "↖",
	navigation.DirectionSlightRight: "↗",
	navigation.DirectionSharpLeft:   "↙",
	navigation.DirectionSharpRight:  "↘",
	navigation.DirectionUTurn:       "↶",
}

var maneuverASCII = map[navigation.ManeuverDirection]string{
	navigation.DirectionStraight:    "^",
	navigation.DirectionLeft:        "<",
	navigation.DirectionRight:       ">",
	navigation.DirectionSlightLeft:  "\\",
	navigation.DirectionSlightRight: "/",
	navigation.DirectionSharpLeft:   "<<",
	navigation.DirectionSharpRight:  ">>",
	navigation.DirectionUTurn:       "U",
}

// ManeuverIcon returns the glyph for a maneuver.
func ManeuverIcon(m navigation.Maneuver, ascii bool) string {
	switch m.Type {
	case navigation.ManeuverArrive:
		if ascii {
			return "*"
		}
		return "◎"
	case navigation.ManeuverRoundabout:
		if ascii {
			return "@"
		}
		return "⟳"
	}
	table := maneuverGlyphs
	if ascii {
		table = maneuverASCII
	}
	if icon, ok := table[m.Direction]; ok {
		return icon
	}
	return table[navigation.DirectionStraight]
}

// SafeIcon pads an icon so wide glyphs do not swallow the following cell.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return icon + strings.Repeat(" ", spaces)
}

// laneGlyph renders one lane from its first indication.
func laneGlyph(l navigation.Lane, ascii bool) string {
	dir := navigation.DirectionStraight
	if len(l.Indications) > 0 {
		dir = l.Indications[0]
	}
	return ManeuverIcon(navigation.Maneuver{Type: navigation.ManeuverTurn, Direction: dir}, ascii)
}
