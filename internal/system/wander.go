package system

import (
	"termrpg/internal/gamemap"
	"termrpg/internal/player"
)

// Direction is a cardinal step.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) of a step in d.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// WanderWeights biases autonomous movement. Same is added to the weight
// of the previous heading.
type WanderWeights struct {
	Same, Up, Down, Left, Right int
}

// DefaultWanderWeights prefers to keep walking the same way.
var DefaultWanderWeights = WanderWeights{Same: 128, Up: 64, Down: 64, Left: 64, Right: 64}

// Intner is the randomness wandering consumes. *rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// NextDirection draws a heading from w, favouring prev.
func NextDirection(rng Intner, w WanderWeights, prev Direction) Direction {
	weights := [4]int{w.Up, w.Down, w.Left, w.Right}
	weights[prev] += w.Same
	total := 0
	for _, v := range weights {
		total += v
	}
	if total <= 0 {
		return prev
	}
	choice := rng.Intn(total)
	for d, v := range weights {
		if choice < v {
			return Direction(d)
		}
		choice -= v
	}
	return prev
}

// Wanderer walks the player around on its own.
type Wanderer struct {
	Weights WanderWeights
	heading Direction
}

// NewWanderer starts heading right.
func NewWanderer(w WanderWeights) *Wanderer {
	return &Wanderer{Weights: w, heading: DirRight}
}

// Heading returns the last direction chosen.
func (w *Wanderer) Heading() Direction { return w.heading }

// Step moves the player one tile, re-rolling the heading a few times when
// the chosen way is blocked.
func (w *Wanderer) Step(gmap *gamemap.GameMap, p *player.Player, rng Intner) MoveResult {
	for attempt := 0; attempt < 4; attempt++ {
		w.heading = NextDirection(rng, w.Weights, w.heading)
		dx, dy := w.heading.Delta()
		if res := TryMove(gmap, p, dx, dy); res != MoveBlocked {
			return res
		}
	}
	return MoveBlocked
}
