package game

import (
	"context"
	"fmt"

	"termrpg/internal/render"
	"termrpg/internal/skill"
)

// runSkills shows every skill with its level and progress.
func (g *Game) runSkills(ctx context.Context) {
	ledger := g.player.Skills()
	err := g.runList(ctx, &listScreen{
		title:  fmt.Sprintf("Skills  (total level %d)", ledger.TotalLevel()),
		footer: "↑/↓ scroll  Esc close",
		close:  'c',
		lines: func() []render.Line {
			lines := make([]render.Line, 0, len(ledger.Names()))
			for _, name := range ledger.Names() {
				s := ledger.Get(name)
				text := fmt.Sprintf("%-14s %2d  %12.0f xp", s.Name, s.Level, s.Experience)
				if s.Level < skill.MaxLevel {
					text += fmt.Sprintf("  %10.0f to next", skill.XPToNext(s.Level, s.Experience))
				}
				lines = append(lines, render.Line{Text: text, Dim: s.Level == 1 && s.Experience == 0})
			}
			return lines
		},
	})
	if err != nil {
		g.log.Debug("skills closed", "error", err)
	}
}

// runQuests shows the quest log. The status line describes the selected
// quest.
func (g *Game) runQuests(ctx context.Context) {
	err := g.runList(ctx, &listScreen{
		title:  "Quests",
		footer: "↑/↓ select  Esc close",
		close:  'o',
		lines: func() []render.Line {
			all := g.quests.All()
			lines := make([]render.Line, 0, len(all))
			for _, q := range all {
				lines = append(lines, render.Line{
					Text: fmt.Sprintf("%-24s %s", q.Name, q.Status()),
					Dim:  q.Completed,
				})
			}
			return lines
		},
		status: func(cursor int) string { return g.quests.All()[cursor].Description },
	})
	if err != nil {
		g.log.Debug("quests closed", "error", err)
	}
}
