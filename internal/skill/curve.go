package skill

import "math"

const (
	// MaxLevel is the highest level any skill can reach.
	MaxLevel = 99
	// MaxExperience caps the experience a single skill can hold.
	MaxExperience = 200_000_000
)

// cumulative[L] is the experience required to reach level L.
// Index 0 is unused.
var cumulative = buildCurve()

func buildCurve() [MaxLevel + 1]float64 {
	var table [MaxLevel + 1]float64
	points := 0.0
	for level := 2; level <= MaxLevel; level++ {
		i := float64(level - 1)
		points += math.Floor(i + 300*math.Pow(2, i/7))
		table[level] = math.Floor(points / 4)
	}
	return table
}

// CumulativeXP returns the total experience needed to reach level.
// Levels outside [1, MaxLevel] are clamped.
func CumulativeXP(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return cumulative[level]
}

// LevelForXP returns the highest level whose threshold xp has reached.
func LevelForXP(xp float64) int {
	level := 1
	for level < MaxLevel && xp >= cumulative[level+1] {
		level++
	}
	return level
}

// XPToNext returns the experience still missing before the next level,
// or 0 at MaxLevel.
func XPToNext(level int, xp float64) float64 {
	if level >= MaxLevel {
		return 0
	}
	return math.Max(0, CumulativeXP(level+1)-xp)
}
