package game

import (
	"github.com/gdamore/tcell/v2"

	"termrpg/internal/combat"
	"termrpg/internal/loot"
)

// Action represents a player-requested overworld action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionAutowalk
	ActionPause
	ActionInventory
	ActionSkills
	ActionQuests
	ActionQuit
)

// keyToAction maps a tcell key event to an overworld action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case 'a', 'A':
		return ActionAutowalk
	case 'p', 'P':
		return ActionPause
	case 'i', 'I':
		return ActionInventory
	case 'c', 'C':
		return ActionSkills
	case 'o', 'O':
		return ActionQuests
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}

// keyToCombat maps a key event to a combat action. ok is false for keys
// that mean nothing in combat. The item key yields a use-item action with
// no item chosen yet.
func keyToCombat(ev *tcell.EventKey) (a combat.Action, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return combat.Flee, true
	case tcell.KeyEnter:
		return combat.Continue, true
	case tcell.KeyRune:
	default:
		return combat.Invalid, false
	}
	switch ev.Rune() {
	case 'm', 'M', '1':
		return combat.Main, true
	case 'c', 'C', '2':
		return combat.Charged, true
	case 's', 'S', '3':
		return combat.Spell, true
	case 'i', 'I':
		return combat.UseItem(loot.Nothing), true
	case 'r', 'R':
		return combat.Flee, true
	}
	return combat.Invalid, true
}
