package render

import (
	"fmt"

	"termrpg/internal/combat"
	"termrpg/internal/component"
)

// CombatView is a snapshot of a fight for the combat screen.
type CombatView struct {
	PlayerName string
	PlayerHP   component.Health
	Enemy      *combat.Enemy
	State      combat.State
	Pending    int
	Messages   []string
}

const barWidth = 20

// CombatOptions lists the key hints shown while choosing an action.
var CombatOptions = []string{
	"[m/1] Main attack",
	"[c/2] Charged attack",
	"[s/3] Cast spell",
	"[i] Use item",
	"[r/Esc] Flee",
}

// DrawCombat clears the screen and renders the combat panel.
func (r *Renderer) DrawCombat(v CombatView) {
	r.screen.Clear()
	y := 1
	r.drawText(2, y, "⚔ Combat", styleYellow)
	y += 2

	col := r.putEnemyGlyph(2, y, v.Enemy.Glyph)
	r.drawText(col, y, v.Enemy.Name, styleWhite)
	y++
	r.drawText(2, y, fmt.Sprintf("%s %d/%d", Bar(v.Enemy.Health, barWidth), v.Enemy.Health.Current, v.Enemy.Health.Max),
		hpStyle(v.Enemy.Health.Fraction()))
	y += 2

	r.drawText(2, y, v.PlayerName, styleWhite)
	y++
	r.drawText(2, y, fmt.Sprintf("%s %d/%d", Bar(v.PlayerHP, barWidth), v.PlayerHP.Current, v.PlayerHP.Max),
		hpStyle(v.PlayerHP.Fraction()))
	y += 2

	r.drawHLine(y, styleGray)
	y++
	switch {
	case v.State == combat.StateCharging:
		r.drawText(2, y, fmt.Sprintf("Charging (%d damage)... press Enter to unleash", v.Pending), styleCyan)
		y++
	case v.State.Terminal():
		r.drawText(2, y, "Press Enter to continue", styleCyan)
		y++
	default:
		for _, opt := range CombatOptions {
			r.drawText(2, y, opt, styleWhite)
			y++
		}
	}
	r.drawHLine(y, styleGray)
	y++

	_, h := r.screen.Size()
	rows := max(0, h-y)
	start := max(0, len(v.Messages)-rows)
	for i, msg := range v.Messages[start:] {
		r.drawText(2, y+i, msg, styleLog)
	}
}

func (r *Renderer) putEnemyGlyph(x, y int, glyph string) int {
	if glyph == "" {
		return x
	}
	r.putGlyph(x, y, glyph, styleWhite)
	return x + 3
}
