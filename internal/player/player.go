// Package player implements the player character.
package player

import (
	"errors"
	"fmt"
	"math"

	"termrpg/internal/component"
	"termrpg/internal/skill"
)

var (
	// ErrNoSuchItem is returned when the inventory lacks the requested item.
	ErrNoSuchItem = errors.New("you don't have that item")
	// ErrNotUsable is returned for items that have no direct use.
	ErrNotUsable = errors.New("cannot be used directly")
	// ErrNotEquippable is returned when equipping something that is not gear.
	ErrNotEquippable = errors.New("cannot be equipped")
)

// defaultHeal is what a consumable without an explicit effect restores.
const defaultHeal = 10

// Catalog resolves item ids. *assets.Catalog satisfies it.
type Catalog interface {
	Item(id int) (component.Item, error)
}

// Point is a map coordinate.
type Point struct{ X, Y int }

// Player is the character the user controls.
type Player struct {
	Name     string
	Pos      Point
	Respawn  Point
	health   component.Health
	skills   *skill.Ledger
	inv      component.Inventory
	equipped map[component.ItemSlot]int
	catalog  Catalog
	inCombat bool
	Kills    int
}

// New returns a player at full health with every default skill.
func New(name string, maxHealth int, catalog Catalog) *Player {
	return &Player{
		Name:     name,
		health:   component.Health{Current: maxHealth, Max: maxHealth},
		skills:   skill.NewDefaultLedger(),
		inv:      component.Inventory{},
		equipped: map[component.ItemSlot]int{},
		catalog:  catalog,
	}
}

func (p *Player) Health() component.Health { return p.health }
func (p *Player) Skills() *skill.Ledger { return p.skills }
func (p *Player) Inventory() component.Inventory { return p.inv }
func (p *Player) InCombat() bool { return p.inCombat }
func (p *Player) SetInCombat(in bool) { p.inCombat = in }

// TakeDamage reduces health, never below zero.
func (p *Player) TakeDamage(n int) int { return p.health.Damage(n) }

// Heal restores health up to the maximum.
func (p *Player) Heal(n int) int { return p.health.Heal(n) }

// AddItem places qty of id in the inventory.
func (p *Player) AddItem(id, qty int) { p.inv.Add(id, qty) }

// Equipped returns the item id worn in slot, or 0.
func (p *Player) Equipped(slot component.ItemSlot) int { return p.equipped[slot] }

// WeaponBonus is the attack bonus of the main-hand weapon.
func (p *Player) WeaponBonus() int {
	id := p.equipped[component.SlotMainHand]
	if id == 0 {
		return 0
	}
	it, err := p.catalog.Item(id)
	if err != nil {
		return 0
	}
	return it.BonusATK
}

// Defence sums the defence bonus of all worn gear.
func (p *Player) Defence() int {
	total := 0
	for _, id := range p.equipped {
		if it, err := p.catalog.Item(id); err == nil {
			total += it.BonusDEF
		}
	}
	return total
}

// UseItem consumes a consumable or equips gear, depending on its type.
func (p *Player) UseItem(id int) (string, error) {
	if p.inv.Count(id) == 0 {
		return "", ErrNoSuchItem
	}
	it, err := p.catalog.Item(id)
	if err != nil {
		return "", err
	}
	switch it.Type {
	case component.TypeConsumable:
		heal := defaultHeal
		if it.Effect != nil {
			heal = it.Effect.HealthChange
		}
		p.inv.Remove(id, 1)
		restored := p.health.Heal(heal)
		return fmt.Sprintf("You use the %s and restore %d health. (%d/%d)",
			it.Name, restored, p.health.Current, p.health.Max), nil
	case component.TypeWeapon, component.TypeArmor:
		if p.inCombat {
			return "", fmt.Errorf("the %s %w in combat", it.Name, ErrNotUsable)
		}
		return p.Equip(id)
	default:
		return "", fmt.Errorf("the %s %w", it.Name, ErrNotUsable)
	}
}

// Equip wears the item in its slot, returning any previous item to the
// inventory.
func (p *Player) Equip(id int) (string, error) {
	if p.inv.Count(id) == 0 {
		return "", ErrNoSuchItem
	}
	it, err := p.catalog.Item(id)
	if err != nil {
		return "", err
	}
	if !it.Equippable() {
		return "", fmt.Errorf("the %s %w", it.Name, ErrNotEquippable)
	}
	p.inv.Remove(id, 1)
	if prev := p.equipped[it.Slot]; prev != 0 {
		p.inv.Add(prev, 1)
	}
	p.equipped[it.Slot] = id
	return fmt.Sprintf("You equip the %s.", it.Name), nil
}

// Unequip returns the item in slot to the inventory.
func (p *Player) Unequip(slot component.ItemSlot) bool {
	id := p.equipped[slot]
	if id == 0 {
		return false
	}
	delete(p.equipped, slot)
	p.inv.Add(id, 1)
	return true
}

// Revive restores full health at the respawn point.
func (p *Player) Revive() {
	p.health.Current = p.health.Max
	p.inCombat = false
	p.Pos = p.Respawn
}

// CarriedWeight sums the weight of inventory and worn gear.
func (p *Player) CarriedWeight() float64 {
	total := 0.0
	for id, qty := range p.inv {
		if it, err := p.catalog.Item(id); err == nil {
			total += it.Weight * float64(qty)
		}
	}
	for _, id := range p.equipped {
		if it, err := p.catalog.Item(id); err == nil {
			total += it.Weight
		}
	}
	return math.Round(total*100) / 100
}
