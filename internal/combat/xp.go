package combat

// XPForTally converts resolved attacks into experience per skill. Skills
// that no attack trained are omitted.
func XPForTally(t Tally, r Rules) map[string]float64 {
	xp := map[string]float64{}
	for kind, count := range t {
		if count == 0 {
			continue
		}
		tr := r.Training[kind]
		if tr.Skill == "" {
			continue
		}
		xp[tr.Skill] += float64(count) * tr.XPPerUse
	}
	return xp
}
