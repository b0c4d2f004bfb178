package panels

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navhud/internal/hud/anim"
	"navhud/internal/navigation"
	"navhud/internal/tui/design"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestRegistry(t *testing.T) (*Registry, *anim.Sequencer, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	seq := anim.NewSequencer(anim.NewGate(nil), anim.WithClock(clock.Now))
	theme := design.NewTheme(design.ColorModeASCII)
	reg := NewRegistry(theme, seq, navigation.NewDistanceFormatter(navigation.UnitsMetric, "en-US"))
	return reg, seq, clock
}

func laneInstruction() navigation.VisualInstruction {
	return navigation.VisualInstruction{
		Primary:  "Elm Avenue",
		Maneuver: navigation.Maneuver{Type: navigation.ManeuverTurn, Direction: navigation.DirectionRight},
		Lanes: []navigation.Lane{
			{Indications: []navigation.ManeuverDirection{navigation.DirectionStraight}},
			{Indications: []navigation.ManeuverDirection{navigation.DirectionRight}, Valid: true},
		},
	}
}

func TestNewRegistry_Defaults(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	assert.True(t, reg.IsLiveMounted())
	assert.Same(t, reg.Live(), reg.Primary())
	assert.True(t, reg.IsCurrentlyVisible(Primary))
	for _, k := range []Kind{Lanes, NextManeuver, Status} {
		assert.False(t, reg.IsCurrentlyVisible(k), k.String())
		assert.True(t, reg.IsHidden(k), k.String())
	}
	assert.Equal(t, reg.Theme().Banner.GetBackground(), reg.PaddingStyle().GetBackground())
}

func TestUpdateContent_MalformedIsNoop(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.UpdateContent(Primary, laneInstruction())
	before := reg.Primary().Snapshot()

	tests := []struct {
		name string
		kind Kind
		data any
	}{
		{"empty instruction", Primary, navigation.VisualInstruction{}},
		{"wrong type", Primary, "Elm Avenue"},
		{"nil", Lanes, nil},
		{"status without title", Status, StatusRequest{Spinner: true}},
		{"status wrong type", Status, navigation.VisualInstruction{Primary: "x"}},
		{"unknown kind", Kind(42), laneInstruction()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := reg.UpdateContent(tt.kind, tt.data)
			assert.False(t, ok)
		})
	}
	assert.Equal(t, before, reg.Primary().Snapshot())
	assert.True(t, reg.IsHidden(Status))
}

func TestUpdateContent_AuxiliaryVisibilityFollowsContent(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	inst := laneInstruction()
	inst.Sub = &navigation.VisualInstruction{Primary: "Quay Road", Maneuver: navigation.Maneuver{Type: navigation.ManeuverTurn}}
	_, ok := reg.UpdateContent(Lanes, inst)
	require.True(t, ok)
	_, ok = reg.UpdateContent(NextManeuver, inst)
	require.True(t, ok)

	assert.True(t, reg.IsCurrentlyVisible(Lanes))
	assert.Equal(t, 2, reg.Lanes().LaneCount())
	assert.True(t, reg.IsCurrentlyVisible(NextManeuver))
	assert.Equal(t, "Quay Road", reg.Next().Sub().Primary)

	plain := navigation.VisualInstruction{Primary: "Harbor Drive", Maneuver: navigation.Maneuver{Type: navigation.ManeuverTurn}}
	reg.UpdateContent(Lanes, plain)
	reg.UpdateContent(NextManeuver, plain)
	assert.False(t, reg.IsCurrentlyVisible(Lanes))
	assert.False(t, reg.IsCurrentlyVisible(NextManeuver))
}

func TestSetHidden_KeepsOptIn(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.SetVisible(Lanes, true)
	reg.SetHidden(Lanes, true)

	assert.True(t, reg.IsCurrentlyVisible(Lanes))
	assert.True(t, reg.IsHidden(Lanes))

	reg.Lanes().Hide()
	assert.False(t, reg.IsCurrentlyVisible(Lanes))
}

func TestHideAuxiliary(t *testing.T) {
	reg, seq, _ := newTestRegistry(t)
	reg.UpdateContent(Lanes, laneInstruction())
	reg.UpdateContent(Status, StatusRequest{Title: "Rerouting…"})

	var hiddenAtDone bool
	calls := 0
	reg.HideAuxiliary(func() tea.Cmd {
		calls++
		hiddenAtDone = reg.IsHidden(Lanes)
		return nil
	})

	assert.Zero(t, reg.Alpha(Lanes), "fade target applied immediately")
	assert.False(t, reg.IsHidden(Lanes), "panels hide only once the fade settles")
	assert.Equal(t, 1.0, reg.Alpha(Primary), "primary never fades out")

	seq.Flush()
	assert.Equal(t, 1, calls)
	assert.False(t, hiddenAtDone, "continuation runs before hiding")
	assert.True(t, reg.IsHidden(Lanes))
	assert.True(t, reg.IsHidden(Status))
	assert.True(t, reg.IsCurrentlyVisible(Lanes), "opt-in survives the fade")
}

func TestShowAuxiliary_RestoresOnlyOptedInPanels(t *testing.T) {
	reg, seq, _ := newTestRegistry(t)
	reg.UpdateContent(Lanes, laneInstruction())
	reg.HideAuxiliary(nil)
	seq.Flush()

	done := false
	reg.ShowAuxiliary(func() tea.Cmd { done = true; return nil })
	assert.False(t, reg.IsHidden(Lanes))
	assert.True(t, reg.IsHidden(NextManeuver), "never opted in")
	assert.True(t, reg.IsHidden(Status), "never opted in")

	seq.Flush()
	assert.True(t, done)
	for _, k := range []Kind{Primary, Lanes, NextManeuver, Status} {
		assert.Equal(t, 1.0, reg.Alpha(k), k.String())
	}
}

func TestShowAuxiliary_SupersedesPendingFadeOut(t *testing.T) {
	reg, seq, _ := newTestRegistry(t)
	reg.UpdateContent(Lanes, laneInstruction())

	hideDone := false
	reg.HideAuxiliary(func() tea.Cmd { hideDone = true; return nil })
	reg.ShowAuxiliary(nil)
	seq.Flush()

	assert.True(t, hideDone, "continuation still runs")
	assert.False(t, reg.IsHidden(Lanes))
	assert.True(t, reg.IsCurrentlyVisible(Lanes))
	assert.Equal(t, 1.0, reg.Alpha(Lanes))
	assert.True(t, reg.IsHidden(NextManeuver), "never opted in")

	reg.HideAuxiliary(nil)
	seq.Flush()
	assert.True(t, reg.IsHidden(Lanes), "a fade-out started after the show still hides")
}

func TestStatus_StaleHideIgnored(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	status := reg.Status()

	status.Show(StatusRequest{Title: "Rerouting…", Spinner: true})
	stale := StatusHideMsg{Generation: status.Generation()}
	status.Show(StatusRequest{Title: "Faster Route Found", Spinner: true, Duration: 3 * time.Second})

	_, handled := reg.Update(stale)
	assert.True(t, handled)
	assert.False(t, reg.IsHidden(Status))
	assert.Equal(t, "Faster Route Found", status.Title())

	reg.Update(StatusHideMsg{Generation: status.Generation()})
	assert.True(t, reg.IsHidden(Status))
	assert.False(t, reg.IsCurrentlyVisible(Status))
	assert.False(t, status.Spinning())
}

func TestStatus_AnimatedHideFadesFirst(t *testing.T) {
	reg, seq, _ := newTestRegistry(t)
	status := reg.Status()
	status.Show(StatusRequest{Title: "Rerouting…"})

	cmd, _ := reg.Update(StatusHideMsg{Generation: status.Generation(), Animated: true})
	require.NotNil(t, cmd)
	assert.False(t, reg.IsHidden(Status))
	assert.Zero(t, reg.Alpha(Status))

	seq.Flush()
	assert.True(t, reg.IsHidden(Status))
	assert.Equal(t, 1.0, reg.Alpha(Status))
}

func TestStatus_ShowDuringFadeKeepsPanel(t *testing.T) {
	reg, seq, _ := newTestRegistry(t)
	status := reg.Status()
	status.Show(StatusRequest{Title: "Rerouting…"})
	reg.Update(StatusHideMsg{Generation: status.Generation(), Animated: true})

	status.ShowSimulationStatus(4)
	seq.Flush()

	assert.False(t, reg.IsHidden(Status))
	assert.Equal(t, "Simulating Navigation at 4×", status.Title())
	assert.True(t, status.Interactive())
}

func TestMountPrimary_AndAppearance(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	preview := NewInstructionsPanel(reg.Theme(), reg.Formatter(), true)

	reg.RefreshAppearance(preview)
	reg.MountPrimary(preview)
	assert.False(t, reg.IsLiveMounted())
	assert.Same(t, preview, reg.Primary())
	assert.Equal(t, reg.Theme().BannerPreview.GetBackground(), preview.Appearance().GetBackground())
	assert.Equal(t, reg.Theme().BannerPreview.GetBackground(), reg.PaddingStyle().GetBackground())

	reg.MountPrimary(nil)
	assert.Same(t, preview, reg.Primary())

	reg.RestoreLivePrimary()
	assert.True(t, reg.IsLiveMounted())
	assert.Equal(t, reg.Theme().Banner.GetBackground(), reg.PaddingStyle().GetBackground())
}

func TestInstructionsPanel_View(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	live := reg.Live()
	live.Update(laneInstruction())
	live.SetDistance(437)

	out := live.View(60, time.Now())
	assert.Contains(t, out, "Elm Avenue")
	assert.Contains(t, out, "450 m")
	assert.Contains(t, out, ">", "ascii maneuver icon")
	assert.Len(t, strings.Split(out, "\n"), InstructionsHeight)
}

func TestRegistry_ViewBlanksFadedPanels(t *testing.T) {
	reg, _, clock := newTestRegistry(t)
	reg.UpdateContent(Primary, laneInstruction())
	reg.UpdateContent(Lanes, laneInstruction())

	visible := reg.View(60)
	assert.Contains(t, visible, "Elm Avenue")
	assert.Contains(t, visible, "|")

	reg.HideAuxiliary(nil)
	clock.now = clock.now.Add(time.Second)
	faded := reg.View(60)
	assert.Contains(t, faded, "Elm Avenue")
	assert.NotContains(t, faded, "|", "lanes blanked but still laid out")
	assert.Equal(t, len(strings.Split(visible, "\n")), len(strings.Split(faded, "\n")))
}
