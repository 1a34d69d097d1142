package component

import "sort"

// Inventory maps item id to quantity. Quantities are always positive;
// an id with no items is absent.
type Inventory map[int]int

// Add increases the quantity of id. Non-positive quantities are ignored.
func (inv Inventory) Add(id, qty int) {
	if qty <= 0 {
		return
	}
	inv[id] += qty
}

// Remove takes up to qty of id and reports whether the full amount was
// available. Nothing is removed when it was not.
func (inv Inventory) Remove(id, qty int) bool {
	have := inv[id]
	if qty <= 0 || have < qty {
		return false
	}
	if have == qty {
		delete(inv, id)
	} else {
		inv[id] = have - qty
	}
	return true
}

// Count returns how many of id are held.
func (inv Inventory) Count(id int) int { return inv[id] }

// IDs returns held item ids in ascending order.
func (inv Inventory) IDs() []int {
	ids := make([]int, 0, len(inv))
	for id := range inv {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
