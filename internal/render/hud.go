package render

import (
	"fmt"
	"strings"

	"termrpg/internal/component"
)

// Status is what the HUD shows about the player.
type Status struct {
	Name       string
	Health     component.Health
	Weapon     string
	TotalLevel int
	X, Y       int
	Autowalk   bool
	Paused     bool
}

// RecentActions is how many log lines the HUD shows.
const RecentActions = 3

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(st Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, styleGray)

	col := r.drawText(0, hudY+1, st.Name+"  ", styleWhite)
	col = r.drawText(col, hudY+1, fmt.Sprintf("HP: %d/%d", st.Health.Current, st.Health.Max),
		hpStyle(st.Health.Fraction()))
	line := fmt.Sprintf("  Weapon: %s  Total level: %d  (%d, %d)", st.Weapon, st.TotalLevel, st.X, st.Y)
	col = r.drawText(col, hudY+1, line, styleWhite)
	switch {
	case st.Autowalk && st.Paused:
		r.drawText(col, hudY+1, "  [autowalk paused]", styleYellow)
	case st.Autowalk:
		r.drawText(col, hudY+1, "  [autowalk]", styleCyan)
	}

	r.drawMessages(hudY+2, messages)
	r.drawText(0, hudY+2+RecentActions, HelpLine, styleGray)
}

func (r *Renderer) drawMessages(y int, messages []string) {
	start := max(0, len(messages)-RecentActions)
	for i, msg := range messages[start:] {
		r.drawText(0, y+i, msg, styleLog)
	}
}

// Bar renders a fixed-width gauge such as [#####-----].
func Bar(h component.Health, width int) string {
	filled := 0
	if h.Max > 0 {
		filled = h.Current * width / h.Max
	}
	if h.Current > 0 && filled == 0 {
		filled = 1
	}
	filled = min(filled, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// HelpLine lists the overworld keys.
const HelpLine = "arrows/hjkl move  a autowalk  p pause  i inventory  c skills  o quests  q quit"
