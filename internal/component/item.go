package component

import (
	"fmt"
	"strings"
)

// ItemType categorises catalog items.
type ItemType uint8

const (
	TypeCurrency ItemType = iota
	TypeWeapon
	TypeArmor
	TypeConsumable
	TypeMisc
)

var itemTypeNames = [...]string{"Currency", "Weapon", "Armor", "Consumable", "Misc"}

func (t ItemType) String() string {
	if int(t) < len(itemTypeNames) {
		return itemTypeNames[t]
	}
	return fmt.Sprintf("ItemType(%d)", t)
}

// ParseItemType is the inverse of String, case-insensitive.
func ParseItemType(s string) (ItemType, error) {
	for i, n := range itemTypeNames {
		if strings.EqualFold(n, s) {
			return ItemType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown item type %q", s)
}

// UnmarshalText lets catalog files spell types by name.
func (t *ItemType) UnmarshalText(b []byte) error {
	v, err := ParseItemType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText writes the type name.
func (t ItemType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ItemSlot is where an equippable item is worn.
type ItemSlot uint8

const (
	SlotNone ItemSlot = iota
	SlotMainHand
	SlotOffHand
	SlotHead
	SlotChest
	SlotLegs
	SlotFeet
	SlotHands
)

var slotNames = [...]string{"None", "Main hand", "Off hand", "Head", "Chest", "Legs", "Feet", "Hands"}

func (s ItemSlot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return fmt.Sprintf("ItemSlot(%d)", s)
}

// Effect is applied to the user of a consumable.
type Effect struct {
	HealthChange  int `yaml:"health_change"`
	StaminaChange int `yaml:"stamina_change"`
}

// Item is one catalog entry. Items are stored in inventories by ID.
type Item struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        ItemType `yaml:"type"`
	Weight      float64  `yaml:"weight"`
	Slot        ItemSlot `yaml:"slot"`
	BonusATK    int      `yaml:"attack_bonus"`
	BonusDEF    int      `yaml:"defence_bonus"`
	Effect      *Effect  `yaml:"effect,omitempty"`
	Glyph       string   `yaml:"glyph"`
	Description string   `yaml:"description"`
}

// IsEmpty returns true when this Item is the zero value (empty slot).
func (i Item) IsEmpty() bool { return i.Name == "" }

// Equippable reports whether the item occupies an equipment slot.
func (i Item) Equippable() bool {
	return (i.Type == TypeWeapon || i.Type == TypeArmor) && i.Slot != SlotNone
}
