package anim

// Curve maps linear progress in [0,1] onto eased progress.
type Curve int

const (
	Linear Curve = iota
	EaseIn
	EaseOut
	EaseInOut
)

func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	case EaseIn:
		return "easeIn"
	case EaseOut:
		return "easeOut"
	case EaseInOut:
		return "easeInOut"
	default:
		return "unknown"
	}
}

// Apply returns the eased value of t, clamping t to [0,1].
func (c Curve) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c {
	case EaseIn:
		return t * t * t
	case EaseOut:
		u := 1 - t
		return 1 - u*u*u
	case EaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	default:
		return t
	}
}
