package component

// Health tracks the player's hit points.
type Health struct {
	Max     int
	Current int
}

// NewHealth creates a Health with current set to max.
func NewHealth(max int) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

// Damage subtracts amount while health is positive. It returns true when
// the hit emptied the bar.
func (h *Health) Damage(amount int) bool {
	if h == nil || amount <= 0 || h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

func (h *Health) Depleted() bool {
	return h != nil && h.Current <= 0
}

func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
}

// Set restores a stored value, clamped to [0, Max].
func (h *Health) Set(v int) {
	if h == nil {
		return
	}
	if v > h.Max {
		v = h.Max
	}
	if v < 0 {
		v = 0
	}
	h.Current = v
}

// Fraction is Current/Max for drawing the health bar.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
