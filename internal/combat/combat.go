// Package combat implements the turn-based fight between the player and a
// single enemy.
//
// A Session is a small state machine. Each call to Step consumes one
// player action, applies the player's attack and then, if the enemy is
// still standing, the enemy's retaliation. A charged attack spans two
// steps: the declaring step lets the enemy swing for free and the
// following step lands the blow.
package combat

import (
	"fmt"

	"termrpg/internal/component"
	"termrpg/internal/loot"
	"termrpg/internal/skill"
)

//go:generate mockgen -destination=mock/player.go -package=combatmock termrpg/internal/combat Player

// State is the position of a Session in its state machine.
type State uint8

const (
	StateChoosing State = iota // waiting for the player's action
	StateCharging              // charged attack declared, lands next step
	StateVictory
	StateDefeat
	StateFled
)

var stateNames = [...]string{"choosing", "charging", "victory", "defeat", "fled"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Terminal reports whether no further actions are accepted.
func (s State) Terminal() bool { return s >= StateVictory }

// ActionKind enumerates what a player can do on their turn.
type ActionKind uint8

const (
	ActionInvalid ActionKind = iota
	ActionMain
	ActionCharged
	ActionSpell
	ActionUseItem
	ActionFlee
	ActionContinue // resolves a pending charged attack
)

var actionNames = [...]string{"invalid", "main", "charged", "spell", "use_item", "flee", "continue"}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", k)
}

// Action is one player command. ItemID is only read for ActionUseItem.
type Action struct {
	Kind   ActionKind
	ItemID int
}

// Convenience constructors.
var (
	Main     = Action{Kind: ActionMain}
	Charged  = Action{Kind: ActionCharged}
	Spell    = Action{Kind: ActionSpell}
	Flee     = Action{Kind: ActionFlee}
	Continue = Action{Kind: ActionContinue}
	Invalid  = Action{Kind: ActionInvalid}
)

// UseItem returns the action that consumes item id.
func UseItem(id int) Action { return Action{Kind: ActionUseItem, ItemID: id} }

// AttackKind classifies resolved attacks for experience purposes.
type AttackKind uint8

const (
	AttackMain AttackKind = iota
	AttackCharged
	AttackMagic
	numAttackKinds
)

// Tally counts resolved attacks per kind during one combat.
type Tally [numAttackKinds]int

// Count returns the number of resolved attacks of kind k.
func (t Tally) Count(k AttackKind) int { return t[k] }

// Total returns the number of resolved attacks.
func (t Tally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Training says which skill an attack kind trains and by how much.
type Training struct {
	Skill    string
	XPPerUse float64
}

// Rules holds the tunable numbers of combat.
type Rules struct {
	BaseDamage       int
	ChargeMultiplier int
	SpellDamage      int
	SpellSkill       string
	FleeChance       float64
	Training         [numAttackKinds]Training
}

// DefaultRules returns the standard combat numbers.
func DefaultRules() Rules {
	return Rules{
		BaseDamage:       10,
		ChargeMultiplier: 3,
		SpellDamage:      15,
		SpellSkill:       skill.Magic,
		FleeChance:       0.5,
		Training: [numAttackKinds]Training{
			AttackMain:    {Skill: skill.Attack, XPPerUse: 10},
			AttackCharged: {Skill: skill.Strength, XPPerUse: 20},
			AttackMagic:   {Skill: skill.Magic, XPPerUse: 15},
		},
	}
}

// ChargeDamage is the damage a charged attack lands.
func (r Rules) ChargeDamage() int { return r.ChargeMultiplier * r.BaseDamage }

// Rand is the randomness a Session consumes. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Player is what combat needs from the player character.
type Player interface {
	Health() component.Health
	// TakeDamage applies n damage, clamping health at zero, and returns the
	// damage actually absorbed.
	TakeDamage(n int) int
	Skills() *skill.Ledger
	// WeaponBonus is the flat bonus the equipped weapon adds to main attacks.
	WeaponBonus() int
	AddItem(id, qty int)
	// UseItem consumes item id and describes what happened.
	UseItem(id int) (string, error)
	SetInCombat(in bool)
}

// LootSource resolves a named drop table. *loot.Registry satisfies it.
type LootSource interface {
	Resolve(table string, rng loot.Rand) (loot.Drops, bool)
}

// ItemNamer looks up catalog item names.
type ItemNamer interface {
	ItemName(id int) (string, bool)
}

// Enemy is a combat-scoped opponent.
type Enemy struct {
	Name      string
	Glyph     string
	Health    component.Health
	Attack    int
	LootTable string
}
