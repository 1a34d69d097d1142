package system

import (
	"termrpg/internal/gamemap"
	"termrpg/internal/player"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // impassable tile or out-of-bounds
	MoveCampfire                   // position updated onto the campfire
)

// TryMove attempts to move the player by (dx, dy) on gmap.
func TryMove(gmap *gamemap.GameMap, p *player.Player, dx, dy int) MoveResult {
	nx, ny := p.Pos.X+dx, p.Pos.Y+dy
	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked
	}
	p.Pos = player.Point{X: nx, Y: ny}
	if gmap.IsCampfire(nx, ny) {
		return MoveCampfire
	}
	return MoveOK
}
