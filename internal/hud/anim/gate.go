package anim

// InteractionHost is the surface whose user input is disabled while a blocking
// transition runs.
type InteractionHost interface {
	SetInteractionBlocked(blocked bool)
}

// Gate owns the single "interaction blocked" flag. The latest Acquire owns it;
// releases from earlier owners are ignored.
type Gate struct {
	host    InteractionHost
	owner   uint64
	issued  uint64
	blocked bool
}

func NewGate(host InteractionHost) *Gate {
	return &Gate{host: host}
}

// SetHost swaps the notified host and pushes the current state to it.
func (g *Gate) SetHost(host InteractionHost) {
	g.host = host
	if host != nil {
		host.SetInteractionBlocked(g.blocked)
	}
}

func (g *Gate) Blocked() bool {
	return g.blocked
}

// Acquire blocks interaction and returns the release for this ownership. The
// release is idempotent.
func (g *Gate) Acquire() (release func()) {
	g.issued++
	token := g.issued
	g.owner = token
	g.set(true)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		if g.owner != token {
			return
		}
		g.owner = 0
		g.set(false)
	}
}

func (g *Gate) set(blocked bool) {
	if g.blocked == blocked {
		return
	}
	g.blocked = blocked
	if g.host != nil {
		g.host.SetInteractionBlocked(blocked)
	}
}
