package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"navhud/pkg/logging"
)

const subsystem = "Sequencer"

// DefaultFrameInterval is the redraw cadence while transitions are in flight.
const DefaultFrameInterval = 33 * time.Millisecond

// maxFlushRounds bounds Flush against completions that keep chaining forever.
const maxFlushRounds = 1024

// Kind names a transition for logging and debugging.
type Kind string

// Transition is one animated mutation with a completion continuation.
type Transition struct {
	Kind     Kind
	Duration time.Duration
	Curve    Curve
	// BlocksInteraction disables host input until the transition settles.
	BlocksInteraction bool
	// Mutate applies the target state. Property changes made through the scope
	// animate with the transition's timing.
	Mutate func(*Scope)
	// OnComplete runs exactly once on the update loop after the transition settles.
	OnComplete func() tea.Cmd
}

// TransitionDoneMsg reports that the transition with ID has settled.
type TransitionDoneMsg struct {
	ID uint64
}

// FrameMsg asks the program to redraw while transitions are in flight.
type FrameMsg struct{}

type inflight struct {
	id         uint64
	transition Transition
	release    func()
}

// Sequencer runs transitions and delivers their completions as bubbletea messages.
// All methods must be called from the update loop.
type Sequencer struct {
	gate          *Gate
	clock         func() time.Time
	scale         float64
	frameInterval time.Duration

	nextID       uint64
	running      map[uint64]*inflight
	order        []uint64
	framePending bool
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(s *Sequencer) { s.clock = clock }
}

// WithScale multiplies every transition duration. 0 turns animation off while
// keeping completions asynchronous.
func WithScale(scale float64) Option {
	return func(s *Sequencer) {
		if scale >= 0 {
			s.scale = scale
		}
	}
}

// WithFrameInterval sets the redraw cadence.
func WithFrameInterval(d time.Duration) Option {
	return func(s *Sequencer) {
		if d > 0 {
			s.frameInterval = d
		}
	}
}

func NewSequencer(gate *Gate, opts ...Option) *Sequencer {
	s := &Sequencer{
		gate:          gate,
		clock:         time.Now,
		scale:         1,
		frameInterval: DefaultFrameInterval,
		running:       make(map[uint64]*inflight),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sequencer) Now() time.Time {
	return s.clock()
}

func (s *Sequencer) Gate() *Gate {
	return s.gate
}

// Scaled applies the duration scale.
func (s *Sequencer) Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * s.scale)
}

// InFlight is the number of transitions that have not completed yet.
func (s *Sequencer) InFlight() int {
	return len(s.running)
}

// InFlightKinds lists running transitions in start order.
func (s *Sequencer) InFlightKinds() []Kind {
	kinds := make([]Kind, 0, len(s.order))
	for _, id := range s.order {
		kinds = append(kinds, s.running[id].transition.Kind)
	}
	return kinds
}

// Run applies t.Mutate inside an animation scope and returns the command that
// delivers its completion. OnComplete never runs inside Run.
func (s *Sequencer) Run(t Transition) tea.Cmd {
	s.nextID++
	id := s.nextID
	d := s.Scaled(t.Duration)

	scope := &Scope{now: s.clock(), duration: d, curve: t.Curve}
	if t.Mutate != nil {
		t.Mutate(scope)
	}

	entry := &inflight{id: id, transition: t}
	if t.BlocksInteraction && s.gate != nil {
		entry.release = s.gate.Acquire()
	}
	s.running[id] = entry
	s.order = append(s.order, id)

	logging.Debug(subsystem, "Run %s #%d (%s, %s)", t.Kind, id, d, t.Curve)

	done := tea.Tick(d, func(time.Time) tea.Msg {
		return TransitionDoneMsg{ID: id}
	})
	return tea.Batch(done, s.frame())
}

// Complete settles the transition with id and returns whatever its continuation
// produced. Unknown or already completed ids are ignored.
func (s *Sequencer) Complete(id uint64) tea.Cmd {
	entry, ok := s.running[id]
	if !ok {
		return nil
	}
	delete(s.running, id)
	for i, queued := range s.order {
		if queued == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if entry.release != nil {
		defer entry.release()
	}

	logging.Debug(subsystem, "Complete %s #%d", entry.transition.Kind, id)
	if entry.transition.OnComplete == nil {
		return nil
	}
	return entry.transition.OnComplete()
}

// Flush completes every in-flight transition in start order, including ones
// started by completions along the way.
func (s *Sequencer) Flush() tea.Cmd {
	var cmds []tea.Cmd
	for round := 0; len(s.order) > 0 && round < maxFlushRounds; round++ {
		if cmd := s.Complete(s.order[0]); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(s.order) > 0 {
		logging.Warn(subsystem, "Flush stopped with %d transitions still chaining", len(s.order))
	}
	return tea.Batch(cmds...)
}

// Update routes sequencer messages. handled is false for anything else.
func (s *Sequencer) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case TransitionDoneMsg:
		return s.Complete(msg.ID), true
	case FrameMsg:
		s.framePending = false
		if len(s.running) > 0 {
			return s.frame(), true
		}
		return nil, true
	}
	return nil, false
}

func (s *Sequencer) frame() tea.Cmd {
	if s.framePending {
		return nil
	}
	s.framePending = true
	return tea.Tick(s.frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}
