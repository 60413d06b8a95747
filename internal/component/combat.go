package component

// Health is a clamped damage accumulator shared by enemies and the base.
type Health struct {
	Max     int
	Current int
}

// NewHealth returns full health.
func NewHealth(max int) *Health {
	return &Health{Max: max, Current: max}
}

// Damage subtracts d. Non-positive amounts and hits on an already depleted
// accumulator are ignored, so Current never drops below the first value <= 0.
func (h *Health) Damage(d int) {
	if d <= 0 || h.Current <= 0 {
		return
	}
	h.Current -= d
}

// Alive reports whether Current is still positive.
func (h *Health) Alive() bool {
	return h.Current > 0
}

// Fraction returns Current/Max clamped to [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return float64(h.Current) / float64(h.Max)
}
