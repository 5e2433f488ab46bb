package component

// Health tracks hit points in [0, Max].
type Health struct {
	Max     int
	Current int
}

// NewHealth creates a Health at full hit points.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether any hit points remain.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// ApplyDamage removes amount hit points, never going below zero. It returns
// the number of points actually removed.
func (h *Health) ApplyDamage(amount int) int {
	if h == nil || amount <= 0 || h.Current <= 0 {
		return 0
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	return amount
}

// SetCurrentHP sets the current health value and clamps to [0, Max].
func (h *Health) SetCurrentHP(v int) {
	if h == nil {
		return
	}
	h.Current = max(0, min(v, h.Max))
}

// Fraction is Current/Max in [0, 1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
