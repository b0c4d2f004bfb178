package panels

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"navhud/internal/tui/design"
	"navhud/internal/tui/utils"
	"navhud/pkg/logging"
)

// StatusRequest describes a status message.
type StatusRequest struct {
	Title   string
	Spinner bool
	// Duration > 0 hides the status automatically after it elapses.
	Duration    time.Duration
	Animated    bool
	Interactive bool
}

// StatusHideMsg fires when a delayed hide is due. Hides scheduled before the
// latest Show carry an older generation and are dropped.
type StatusHideMsg struct {
	Generation uint64
	Animated   bool
}

// StatusPanel shows transient or persistent navigation status.
type StatusPanel struct {
	Panel

	theme       *design.Theme
	title       string
	spinning    bool
	interactive bool
	generation  uint64
	spinner     spinner.Model
}

func NewStatusPanel(theme *design.Theme) *StatusPanel {
	kind := spinner.Dot
	if theme.ASCII {
		kind = spinner.Line
	}
	return &StatusPanel{
		Panel:   newPanel(false),
		theme:   theme,
		spinner: spinner.New(spinner.WithSpinner(kind), spinner.WithStyle(theme.Spinner)),
	}
}

func (s *StatusPanel) Title() string     { return s.title }
func (s *StatusPanel) Spinning() bool    { return s.spinning }
func (s *StatusPanel) Interactive() bool { return s.interactive }

func (s *StatusPanel) SpinnerID() int { return s.spinner.ID() }

// Generation identifies the latest Show or Hide.
func (s *StatusPanel) Generation() uint64 { return s.generation }

// Show displays req and returns the spinner and auto-hide commands it needs.
func (s *StatusPanel) Show(req StatusRequest) tea.Cmd {
	s.generation++
	s.title = req.Title
	s.spinning = req.Spinner
	s.interactive = req.Interactive
	s.SetVisible(true)
	s.Alpha.Set(1)
	logging.Debug("Status", "Show %q (spinner=%t, duration=%s)", req.Title, req.Spinner, req.Duration)

	var cmds []tea.Cmd
	if req.Spinner {
		cmds = append(cmds, s.spinner.Tick)
	}
	if req.Duration > 0 {
		cmds = append(cmds, s.scheduleHide(req.Duration, req.Animated))
	}
	return tea.Batch(cmds...)
}

// ShowSimulationStatus shows the persistent simulation banner.
func (s *StatusPanel) ShowSimulationStatus(speed int) tea.Cmd {
	return s.Show(StatusRequest{
		Title:       fmt.Sprintf("Simulating Navigation at %d×", speed),
		Animated:    true,
		Interactive: true,
	})
}

// Hide schedules hiding after delay. The hide only applies if no Show happens in
// between.
func (s *StatusPanel) Hide(delay time.Duration, animated bool) tea.Cmd {
	return s.scheduleHide(delay, animated)
}

func (s *StatusPanel) scheduleHide(delay time.Duration, animated bool) tea.Cmd {
	gen := s.generation
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return StatusHideMsg{Generation: gen, Animated: animated}
	})
}

// IsCurrent reports whether a hide scheduled at gen still applies.
func (s *StatusPanel) IsCurrent(gen uint64) bool {
	return gen == s.generation
}

// HideNow hides the status immediately.
func (s *StatusPanel) HideNow() {
	s.generation++
	s.spinning = false
	s.interactive = false
	s.SetVisible(false)
}

// UpdateSpinner advances the spinner; ticks stop once it is no longer shown.
func (s *StatusPanel) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !s.spinning || s.IsHidden() {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// resume restarts the spinner after the panel was hidden.
func (s *StatusPanel) resume() tea.Cmd {
	if !s.spinning || s.IsHidden() {
		return nil
	}
	return s.spinner.Tick
}

func (s *StatusPanel) View(width int, now time.Time) string {
	t := s.theme
	text := s.title
	if s.spinning {
		text = s.spinner.View() + " " + text
	}
	if s.interactive {
		text += t.SecondaryText.Render("  (+/-)")
	}
	inner := width - t.Status.GetHorizontalFrameSize()
	rendered := t.Status.Width(width).Render(utils.TruncateString(text, inner))
	return s.withAlpha(rendered, t.Faint, now)
}
