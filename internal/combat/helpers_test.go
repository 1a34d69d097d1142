package combat_test

import (
	"errors"

	"termrpg/internal/component"
	"termrpg/internal/skill"
)

// testPlayer is a minimal in-memory combat.Player.
type testPlayer struct {
	hp       component.Health
	skills   *skill.Ledger
	weapon   int
	inv      component.Inventory
	inCombat bool
	hits     int
}

func newTestPlayer(hp int) *testPlayer {
	return &testPlayer{
		hp:     component.Health{Current: hp, Max: hp},
		skills: skill.NewDefaultLedger(),
		inv:    component.Inventory{},
	}
}

func (p *testPlayer) Health() component.Health { return p.hp }
func (p *testPlayer) Skills() *skill.Ledger { return p.skills }
func (p *testPlayer) WeaponBonus() int { return p.weapon }
func (p *testPlayer) AddItem(id, qty int) { p.inv.Add(id, qty) }
func (p *testPlayer) SetInCombat(in bool) { p.inCombat = in }

func (p *testPlayer) TakeDamage(n int) int {
	p.hits++
	return p.hp.Damage(n)
}

var errNoItem = errors.New("you don't have that item")

func (p *testPlayer) UseItem(id int) (string, error) {
	if !p.inv.Remove(id, 1) {
		return "", errNoItem
	}
	p.hp.Heal(10)
	return "You feel better.", nil
}

// scriptedRand returns the scripted floats in order, repeating the last
// one, and the lowest value of any Intn range.
type scriptedRand struct {
	floats []float64
	i      int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	if r.i >= len(r.floats) {
		return r.floats[len(r.floats)-1]
	}
	v := r.floats[r.i]
	r.i++
	return v
}

func (r *scriptedRand) Intn(int) int { return 0 }

type namer map[int]string

func (n namer) ItemName(id int) (string, bool) {
	name, ok := n[id]
	return name, ok
}
