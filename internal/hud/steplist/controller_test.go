package steplist

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navhud/internal/hud/anim"
	"navhud/internal/hud/panels"
	"navhud/internal/navigation"
	"navhud/internal/tui/design"
)

type harness struct {
	seq      *anim.Sequencer
	registry *panels.Registry
	ctrl     *Controller
	events   []string
	preview  bool
	now      time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	h.seq = anim.NewSequencer(anim.NewGate(nil), anim.WithClock(func() time.Time { return h.now }))
	h.registry = panels.NewRegistry(design.NewTheme(design.ColorModeASCII), h.seq, navigation.NewDistanceFormatter(navigation.UnitsMetric, "en-US"))
	h.ctrl = NewController(h.seq, h.registry)
	h.ctrl.SetHooks(Hooks{
		WillDisplay:   func(*StepsView) { h.events = append(h.events, "willDisplay") },
		DidDisplay:    func(*StepsView) { h.events = append(h.events, "didDisplay") },
		WillDismiss:   func(*StepsView) { h.events = append(h.events, "willDismiss") },
		DidDismiss:    func(*StepsView) { h.events = append(h.events, "didDismiss") },
		PreviewActive: func() bool { return h.preview },
	})
	h.ctrl.SetAttached(true)
	return h
}

func demoProgress() navigation.RouteProgress {
	return navigation.RouteProgress{Route: navigation.DemoRoute(), LegIndex: 0, StepIndex: 1, DistanceTraveledOnStep: 100}
}

func TestNewStepsView_Rows(t *testing.T) {
	v := NewStepsView(demoProgress(), design.NewTheme(design.ColorModeASCII), navigation.NewDistanceFormatter(navigation.UnitsMetric, "en-US"))
	rows := v.Rows()
	require.Len(t, rows, 7)
	assert.Equal(t, "harbor-drive", rows[0].Step.ID)
	assert.Equal(t, 2, rows[0].StepIndex)
	assert.Equal(t, 1, rows[3].LegIndex)
	assert.Equal(t, 0, rows[3].StepIndex)
	assert.Equal(t, "Harbor to station", rows[3].LegName)
	assert.Contains(t, v.Text(), "-- Harbor to station --")
	assert.Contains(t, v.Text(), "1. Turn left onto Harbor Drive (90 m)")
}

func TestOpen_NotAttachedIsNoop(t *testing.T) {
	h := newHarness(t)
	h.ctrl.SetAttached(false)

	assert.Nil(t, h.ctrl.Open(demoProgress()))
	assert.Nil(t, h.ctrl.Close(nil))
	assert.Equal(t, Closed, h.ctrl.State())
	assert.Empty(t, h.events)
}

func TestOpen_Lifecycle(t *testing.T) {
	h := newHarness(t)
	h.registry.UpdateContent(panels.Lanes, navigation.VisualInstruction{
		Primary: "Elm", Lanes: []navigation.Lane{{Valid: true}},
	})

	cmd := h.ctrl.Open(demoProgress())
	require.NotNil(t, cmd)
	assert.Equal(t, Opening, h.ctrl.State())
	assert.Equal(t, []string{"willDisplay"}, h.events)
	assert.True(t, h.seq.Gate().Blocked())
	assert.Equal(t, 1.0, h.ctrl.Height().Target())
	assert.Zero(t, h.registry.Alpha(panels.Lanes))

	session, ok := h.ctrl.Session()
	require.True(t, ok)
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.IsOpen)

	h.seq.Flush()
	assert.Equal(t, Open, h.ctrl.State())
	assert.Equal(t, []string{"willDisplay", "didDisplay"}, h.events)
	assert.False(t, h.seq.Gate().Blocked())
	assert.True(t, h.registry.IsHidden(panels.Lanes))
	session, _ = h.ctrl.Session()
	assert.True(t, session.IsOpen)

	assert.Nil(t, h.ctrl.Open(demoProgress()), "open is only valid while closed")
}

func TestClose_FromClosedIsNoop(t *testing.T) {
	h := newHarness(t)
	called := false
	assert.Nil(t, h.ctrl.Close(func() tea.Cmd { called = true; return nil }))
	h.seq.Flush()
	assert.False(t, called)
	assert.Empty(t, h.events)
}

func TestClose_RestoresAuxiliaryPanels(t *testing.T) {
	h := newHarness(t)
	h.registry.UpdateContent(panels.Lanes, navigation.VisualInstruction{
		Primary: "Elm", Lanes: []navigation.Lane{{Valid: true}},
	})
	h.ctrl.Open(demoProgress())
	h.seq.Flush()

	done := 0
	h.ctrl.Close(func() tea.Cmd { done++; return nil })
	assert.Equal(t, Closing, h.ctrl.State())
	assert.True(t, h.seq.Gate().Blocked())

	h.seq.Flush()
	assert.Equal(t, Closed, h.ctrl.State())
	assert.Nil(t, h.ctrl.View())
	assert.Equal(t, 1, done)
	assert.Equal(t, []string{"willDisplay", "didDisplay", "willDismiss", "didDismiss"}, h.events)
	assert.False(t, h.registry.IsHidden(panels.Lanes))
	assert.True(t, h.registry.IsHidden(panels.Status), "status was never opted in")
	assert.Equal(t, 1.0, h.registry.Alpha(panels.Lanes))
	assert.False(t, h.seq.Gate().Blocked())
}

func TestClose_SkipsRestorationDuringPreview(t *testing.T) {
	h := newHarness(t)
	h.registry.UpdateContent(panels.Lanes, navigation.VisualInstruction{
		Primary: "Elm", Lanes: []navigation.Lane{{Valid: true}},
	})
	h.ctrl.Open(demoProgress())
	h.seq.Flush()

	h.preview = true
	h.ctrl.Close(nil)
	h.seq.Flush()

	assert.Equal(t, Closed, h.ctrl.State())
	assert.Contains(t, h.events, "didDismiss")
	assert.True(t, h.registry.IsHidden(panels.Lanes))
}

func TestClose_QueuedWhileOpening(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Open(demoProgress())

	done := false
	assert.Nil(t, h.ctrl.Close(func() tea.Cmd { done = true; return nil }))
	assert.Equal(t, Opening, h.ctrl.State())

	h.seq.Flush()
	assert.Equal(t, Closed, h.ctrl.State())
	assert.True(t, done)
	assert.Equal(t, []string{"willDisplay", "didDisplay", "willDismiss", "didDismiss"}, h.events)
}

func TestClose_ChainsWhileClosing(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Open(demoProgress())
	h.seq.Flush()

	var order []string
	h.ctrl.Close(func() tea.Cmd { order = append(order, "first"); return nil })
	h.ctrl.Close(func() tea.Cmd { order = append(order, "second"); return nil })
	h.seq.Flush()

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 1, countOf(h.events, "willDismiss"))
	assert.Equal(t, 1, countOf(h.events, "didDismiss"))
}

func TestOpenAfterClose(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Open(demoProgress())
	h.seq.Flush()
	first, _ := h.ctrl.Session()

	h.ctrl.Close(nil)
	h.ctrl.OpenAfterClose(demoProgress())
	h.seq.Flush()

	assert.Equal(t, Open, h.ctrl.State())
	second, _ := h.ctrl.Session()
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, []string{"willDisplay", "didDisplay", "willDismiss", "didDismiss", "willDisplay", "didDisplay"}, h.events)
}

func TestOpenAfterClose_DroppedWhenPreviewTakesOver(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Open(demoProgress())
	h.seq.Flush()

	h.ctrl.Close(nil)
	h.ctrl.OpenAfterClose(demoProgress())
	h.preview = true
	h.seq.Flush()

	assert.Equal(t, Closed, h.ctrl.State())
	assert.Nil(t, h.ctrl.View())
	assert.Equal(t, []string{"willDisplay", "didDisplay", "willDismiss", "didDismiss"}, h.events)
}

func TestSelect_ForwardsCursorRow(t *testing.T) {
	h := newHarness(t)
	var got []int
	var gotCell Cell
	hooks := h.ctrl.hooks
	hooks.DidSelect = func(leg, step int, cell Cell) tea.Cmd {
		got = []int{leg, step}
		gotCell = cell
		return nil
	}
	h.ctrl.SetHooks(hooks)

	assert.Nil(t, h.ctrl.Select(), "nothing to select while closed")
	h.ctrl.Open(demoProgress())
	h.ctrl.MoveCursor(1)
	assert.Equal(t, 0, h.ctrl.View().Cursor(), "cursor ignored until open")
	h.seq.Flush()

	h.ctrl.MoveCursor(4)
	h.ctrl.MoveCursor(-1)
	h.ctrl.Select()
	assert.Equal(t, []int{1, 0}, got)
	assert.Equal(t, 3, gotCell.Row)
	assert.Contains(t, gotCell.Text, "Head east on Quay Road")

	h.ctrl.MoveCursor(100)
	assert.Equal(t, 6, h.ctrl.View().Cursor())
}

func TestRender_FollowsAnimatedHeight(t *testing.T) {
	h := newHarness(t)
	assert.Empty(t, h.ctrl.Render(60, 10))

	h.ctrl.Open(demoProgress())
	assert.Empty(t, h.ctrl.Render(60, 10), "collapsed at the start of the expand")

	h.now = h.now.Add(time.Second)
	out := h.ctrl.Render(60, 10)
	assert.Contains(t, out, "Harbor Drive")
}

func countOf(events []string, name string) int {
	n := 0
	for _, e := range events {
		if e == name {
			n++
		}
	}
	return n
}
