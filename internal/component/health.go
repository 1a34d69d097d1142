package component

// Health tracks hit points. Current is never negative.
type Health struct {
	Current, Max int
}

// Damage subtracts n (ignored when negative) and clamps at zero. It
// returns the damage actually absorbed.
func (h *Health) Damage(n int) int {
	if n <= 0 {
		return 0
	}
	if n > h.Current {
		n = h.Current
	}
	h.Current -= n
	return n
}

// Heal restores up to n hit points without exceeding Max and returns the
// amount restored.
func (h *Health) Heal(n int) int {
	if n <= 0 || h.Current >= h.Max {
		return 0
	}
	if h.Current+n > h.Max {
		n = h.Max - h.Current
	}
	h.Current += n
	return n
}

// Dead reports whether the health pool is exhausted.
func (h Health) Dead() bool { return h.Current <= 0 }

// Fraction returns Current/Max in [0, 1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
