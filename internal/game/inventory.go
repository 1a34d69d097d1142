package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"termrpg/internal/component"
	"termrpg/internal/render"
)

// equipSlots are listed in the equipment panel, in this order.
var equipSlots = []component.ItemSlot{
	component.SlotMainHand,
	component.SlotOffHand,
	component.SlotHead,
	component.SlotChest,
	component.SlotLegs,
	component.SlotFeet,
	component.SlotHands,
}

const (
	backpackFooter  = "↑/↓ select  Enter use/equip  Tab equipment  PgUp/PgDn page  Esc close"
	equipmentFooter = "↑/↓ select  Enter unequip  Tab backpack  Esc close"
	pickFooter      = "↑/↓ select  Enter use  Esc cancel"
)

// runInventory opens the inventory screen. Tab switches between the
// backpack and the worn equipment.
func (g *Game) runInventory(ctx context.Context) {
	equipment := false
	ls := &listScreen{close: 'i'}
	ls.lines = func() []render.Line {
		ls.title = fmt.Sprintf("Inventory  (carrying %.1f kg)", g.player.CarriedWeight())
		if equipment {
			ls.footer = equipmentFooter
			return g.equipmentLines()
		}
		ls.footer = backpackFooter
		return g.backpackLines(g.player.Inventory().IDs())
	}
	ls.onKey = func(ev *tcell.EventKey, cursor int) (string, bool) {
		switch {
		case ev.Key() == tcell.KeyTab:
			equipment = !equipment
			return "", false
		case ev.Key() == tcell.KeyEnter || ev.Rune() == 'u' || ev.Rune() == 'e':
		default:
			return "", false
		}
		if equipment {
			return g.unequip(equipSlots[cursor]), false
		}
		ids := g.player.Inventory().IDs()
		if cursor >= len(ids) {
			return "Nothing selected.", false
		}
		return g.useItem(ids[cursor]), false
	}
	if err := g.runList(ctx, ls); err != nil {
		g.log.Debug("inventory closed", "error", err)
	}
}

// pickConsumable lets the player choose a consumable during combat.
// picked is false when the player backs out.
func (g *Game) pickConsumable(ctx context.Context) (id int, picked bool, err error) {
	consumables := func() []int {
		var ids []int
		for _, id := range g.player.Inventory().IDs() {
			if it, err := g.catalog.Item(id); err == nil && it.Type == component.TypeConsumable {
				ids = append(ids, id)
			}
		}
		return ids
	}
	err = g.runList(ctx, &listScreen{
		title:  "Use which item?",
		footer: pickFooter,
		close:  'i',
		lines:  func() []render.Line { return g.backpackLines(consumables()) },
		onKey: func(ev *tcell.EventKey, cursor int) (string, bool) {
			ids := consumables()
			if ev.Key() != tcell.KeyEnter || cursor >= len(ids) {
				return "", false
			}
			id, picked = ids[cursor], true
			return "", true
		},
	})
	return id, picked, err
}

func (g *Game) backpackLines(ids []int) []render.Line {
	lines := make([]render.Line, 0, len(ids))
	for _, id := range ids {
		it, err := g.catalog.Item(id)
		if err != nil {
			lines = append(lines, render.Line{Text: fmt.Sprintf("unknown item %d", id), Dim: true})
			continue
		}
		text := fmt.Sprintf("%-28s x%-5d %s", it.Name, g.player.Inventory().Count(id), it.Type)
		lines = append(lines, render.Line{Text: text, Dim: it.Type == component.TypeMisc})
	}
	return lines
}

func (g *Game) equipmentLines() []render.Line {
	lines := make([]render.Line, 0, len(equipSlots))
	for _, slot := range equipSlots {
		name, ok := g.catalog.ItemName(g.player.Equipped(slot))
		if !ok {
			lines = append(lines, render.Line{Text: fmt.Sprintf("%-10s (empty)", slot), Dim: true})
			continue
		}
		lines = append(lines, render.Line{Text: fmt.Sprintf("%-10s %s", slot, name)})
	}
	return lines
}

// useItem applies an item outside combat and logs the outcome.
func (g *Game) useItem(id int) string {
	msg, err := g.player.UseItem(id)
	if err != nil {
		msg = sentence(err)
	}
	g.addMessage(msg)
	return msg
}

func (g *Game) unequip(slot component.ItemSlot) string {
	name, _ := g.catalog.ItemName(g.player.Equipped(slot))
	if !g.player.Unequip(slot) {
		return "Nothing to unequip."
	}
	msg := fmt.Sprintf("You unequip the %s.", name)
	g.addMessage(msg)
	return msg
}
