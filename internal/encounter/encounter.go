// Package encounter decides when a random fight starts and who it is with.
package encounter

import (
	"termrpg/internal/combat"
	"termrpg/internal/component"
)

// Rand is the randomness encounters consume. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ShouldEncounter rolls a chancePercent in 100 check. The chance is
// clamped to [0, 100].
func ShouldEncounter(rng Rand, chancePercent int) bool {
	if chancePercent <= 0 {
		return false
	}
	if chancePercent >= 100 {
		return true
	}
	return rng.Intn(100) < chancePercent
}

// Trigger checks for an encounter once per player step.
type Trigger struct {
	Chance int
	Rand   Rand
}

// Check never fires while the player is already fighting.
func (t Trigger) Check(inCombat bool) bool {
	if inCombat {
		return false
	}
	return ShouldEncounter(t.Rand, t.Chance)
}

// Template describes an enemy kind in the roster.
type Template struct {
	Name      string `yaml:"name"`
	Glyph     string `yaml:"glyph"`
	Health    int    `yaml:"health"`
	Attack    int    `yaml:"attack"`
	LootTable string `yaml:"loot_table"`
}

// Spawn instantiates the template at full health.
func (t Template) Spawn() *combat.Enemy {
	return &combat.Enemy{
		Name:      t.Name,
		Glyph:     t.Glyph,
		Health:    component.Health{Current: t.Health, Max: t.Health},
		Attack:    t.Attack,
		LootTable: t.LootTable,
	}
}

// Roster is the set of enemies a random encounter can produce.
type Roster []Template

// Spawn picks a template uniformly. It returns nil for an empty roster.
func (r Roster) Spawn(rng Rand) *combat.Enemy {
	if len(r) == 0 {
		return nil
	}
	return r[rng.Intn(len(r))].Spawn()
}
