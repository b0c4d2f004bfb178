package steplist

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"navhud/internal/hud/anim"
	"navhud/internal/hud/panels"
	"navhud/internal/navigation"
	"navhud/internal/tui/design"
	"navhud/internal/tui/utils"
)

// Row is one step in the list with its position in the route.
type Row struct {
	LegIndex  int
	StepIndex int
	Step      *navigation.Step
	// LegName is set on the first row of every leg after the current one.
	LegName string
}

// Cell identifies the selected row as displayed.
type Cell struct {
	Row  int
	Text string
}

// StepsView lists the remaining steps of a route progress snapshot.
type StepsView struct {
	theme     *design.Theme
	formatter navigation.DistanceFormatter
	rows      []Row
	cursor    int
	offset    int
}

// NewStepsView builds rows for the steps after the current one in the current
// leg, followed by every step of the later legs.
func NewStepsView(progress navigation.RouteProgress, theme *design.Theme, formatter navigation.DistanceFormatter) *StepsView {
	v := &StepsView{theme: theme, formatter: formatter}
	for i, step := range progress.UpcomingSteps() {
		v.rows = append(v.rows, Row{LegIndex: progress.LegIndex, StepIndex: progress.StepIndex + 1 + i, Step: step})
	}
	for i, leg := range progress.RemainingLegs() {
		for si, step := range leg.Steps {
			row := Row{LegIndex: progress.LegIndex + 1 + i, StepIndex: si, Step: step}
			if si == 0 {
				row.LegName = leg.Name
			}
			v.rows = append(v.rows, row)
		}
	}
	return v
}

func (v *StepsView) Rows() []Row {
	return v.rows
}

func (v *StepsView) Cursor() int {
	return v.cursor
}

func (v *StepsView) MoveUp() {
	if v.cursor > 0 {
		v.cursor--
	}
}

func (v *StepsView) MoveDown() {
	if v.cursor < len(v.rows)-1 {
		v.cursor++
	}
}

// Selected returns the row under the cursor and its cell.
func (v *StepsView) Selected() (Row, Cell, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return Row{}, Cell{}, false
	}
	row := v.rows[v.cursor]
	return row, Cell{Row: v.cursor, Text: v.rowText(row)}, true
}

func (v *StepsView) rowText(row Row) string {
	text := row.Step.Instruction
	if text == "" {
		text = row.Step.Name
	}
	if row.Step.Distance > 0 {
		text = fmt.Sprintf("%s (%s)", text, v.formatter.Format(row.Step.Distance))
	}
	return text
}

// Text renders the list as plain text, one step per line.
func (v *StepsView) Text() string {
	var b strings.Builder
	for i, row := range v.rows {
		if row.LegName != "" {
			fmt.Fprintf(&b, "-- %s --\n", row.LegName)
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, v.rowText(row))
	}
	return b.String()
}

// View renders up to height lines, scrolled so the cursor stays visible.
func (v *StepsView) View(width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	t := v.theme
	if len(v.rows) == 0 {
		return t.StepsContainer.Width(width).Height(height).Render(t.StepRow.Render("No remaining steps"))
	}

	var lines []string
	cursorLine := 0
	for i, row := range v.rows {
		if row.LegName != "" {
			lines = append(lines, t.LegHeader.Render(utils.TruncateString(row.LegName, width-2)))
		}
		if i == v.cursor {
			cursorLine = len(lines)
		}
		icon := panels.SafeIcon(panels.ManeuverIcon(row.Step.Maneuver, t.ASCII))
		text := utils.TruncateString(icon+v.rowText(row), width-3)
		if i == v.cursor {
			lines = append(lines, t.StepRowSelected.Render(text))
		} else {
			lines = append(lines, t.StepRow.Render(text))
		}
	}

	if cursorLine < v.offset {
		v.offset = cursorLine
	}
	if cursorLine >= v.offset+height {
		v.offset = cursorLine - height + 1
	}
	end := min(len(lines), v.offset+height)
	body := strings.Join(lines[v.offset:end], "\n")
	return t.StepsContainer.Width(width).Height(height).Render(body)
}

// containerView renders the list clipped to the animated container height.
func containerView(v *StepsView, height anim.Property, width, maxHeight int, now time.Time) string {
	rows := int(math.Round(height.At(now) * float64(maxHeight)))
	if v == nil || rows <= 0 {
		return ""
	}
	full := v.View(width, maxHeight)
	return lipgloss.NewStyle().MaxHeight(rows).Render(full)
}
