package game

import (
	"context"
	"fmt"

	"termrpg/assets"
	"termrpg/internal/combat"
	"termrpg/internal/loot"
	"termrpg/internal/render"
)

// fight spawns an enemy and hands control to the combat engine until the
// fight ends.
func (g *Game) fight(ctx context.Context) *combat.Result {
	enemy := g.catalog.Roster.Spawn(g.rng)
	if enemy == nil {
		g.log.Warn("encounter fired with an empty roster")
		return nil
	}
	g.state = StateCombat
	g.addMessage(fmt.Sprintf("A wild %s appears!", enemy.Name))

	s := combat.New(g.player, enemy, combat.Deps{
		Rand:   g.rng,
		Loot:   g.catalog.Loot,
		Items:  g.catalog,
		Logger: g.log,
	})
	res := combat.Run(ctx, s, combatInput{g: g}, func(t combat.Turn) {
		for _, msg := range t.Messages {
			g.addMessage(msg)
		}
	})

	if ctx.Err() == nil {
		g.drawCombat(s)
		g.awaitContinue(ctx)
	}
	g.afterCombat(res)
	g.state = StateExploring
	return res
}

// afterCombat records the result and applies its consequences outside the
// fight.
func (g *Game) afterCombat(res *combat.Result) {
	if err := g.runLog.Append(res); err != nil {
		g.log.Warn("could not write combat history", "error", err)
	}
	if n := len(g.messages); n == 0 || g.messages[n-1] != res.Summary {
		g.addMessage(res.Summary)
	}

	switch res.Outcome {
	case combat.OutcomeVictory:
		g.player.Kills++
		if !g.lore[res.Enemy] {
			g.lore[res.Enemy] = true
			if text, ok := assets.EnemyLore[res.Enemy]; ok {
				g.addMessage(text)
			}
		}
		for _, q := range g.quests.RecordKill(res.Enemy) {
			g.addMessage(fmt.Sprintf("Quest complete: %s", q.Name))
		}
	case combat.OutcomeDefeat:
		g.respawn()
	}
}

// awaitContinue blocks until any key is pressed.
func (g *Game) awaitContinue(ctx context.Context) {
	for {
		ev, err := g.nextKey(ctx)
		if err != nil || ev != nil {
			return
		}
	}
}

func (g *Game) drawCombat(s *combat.Session) {
	g.renderer.DrawCombat(render.CombatView{
		PlayerName: g.player.Name,
		PlayerHP:   g.player.Health(),
		Enemy:      s.Enemy(),
		State:      s.State(),
		Pending:    s.PendingDamage(),
		Messages:   g.messages,
	})
	g.renderer.Show()
}

// combatInput reads combat actions from the keyboard.
type combatInput struct {
	g *Game
}

func (in combatInput) NextAction(ctx context.Context, s *combat.Session) (combat.Action, error) {
	for {
		in.g.drawCombat(s)
		ev, err := in.g.nextKey(ctx)
		if err != nil {
			return combat.Invalid, err
		}
		if ev == nil {
			continue
		}
		a, ok := keyToCombat(ev)
		if !ok {
			continue
		}
		if a.Kind == combat.ActionUseItem && a.ItemID == loot.Nothing {
			id, picked, err := in.g.pickConsumable(ctx)
			if err != nil {
				return combat.Invalid, err
			}
			if !picked {
				continue
			}
			a = combat.UseItem(id)
		}
		return a, nil
	}
}
