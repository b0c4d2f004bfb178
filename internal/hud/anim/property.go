package anim

import "time"

// Property is an animatable scalar such as a panel's opacity or a container's
// expansion. The zero value is a property resting at 0.
type Property struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	curve    Curve
}

func NewProperty(v float64) Property {
	return Property{from: v, to: v}
}

// Set jumps to v without animating.
func (p *Property) Set(v float64) {
	*p = Property{from: v, to: v}
}

// Target is the value the property settles at.
func (p Property) Target() float64 {
	return p.to
}

// At returns the interpolated value at now.
func (p Property) At(now time.Time) float64 {
	if p.duration <= 0 || !now.Before(p.start.Add(p.duration)) {
		return p.to
	}
	elapsed := now.Sub(p.start)
	if elapsed <= 0 {
		return p.from
	}
	t := float64(elapsed) / float64(p.duration)
	return p.from + (p.to-p.from)*p.curve.Apply(t)
}

// Animating reports whether the property is still moving at now.
func (p Property) Animating(now time.Time) bool {
	return p.duration > 0 && now.Before(p.start.Add(p.duration)) && p.from != p.to
}

// Scope records property changes made inside a transition. Every Animate call
// starts from the property's current on-screen value, so retargeting mid-flight
// does not jump.
type Scope struct {
	now      time.Time
	duration time.Duration
	curve    Curve
}

// Animate moves p towards target with the scope's timing. A nil scope applies the
// change immediately.
func (s *Scope) Animate(p *Property, target float64) {
	if s == nil || s.duration <= 0 {
		p.Set(target)
		return
	}
	*p = Property{
		from:     p.At(s.now),
		to:       target,
		start:    s.now,
		duration: s.duration,
		curve:    s.curve,
	}
}

// Duration is the scaled duration of the enclosing transition.
func (s *Scope) Duration() time.Duration {
	if s == nil {
		return 0
	}
	return s.duration
}
