// Package loot resolves weighted drop tables.
//
// Every entry of a table is rolled independently: an entry hits when
// rng.Float64()*total < weight, so a single kill can drop several items or
// none at all.
package loot

import (
	"errors"
	"fmt"
)

// Nothing is the item id of an entry that drops no item when it hits.
const Nothing = 0

// Rand is the subset of *rand.Rand the resolver needs.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Range is an inclusive quantity range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Entry is one line of a drop table.
type Entry struct {
	ItemID   int     `yaml:"item"`
	Quantity *Range  `yaml:"quantity,omitempty"`
	Weight   float64 `yaml:"weight"`
}

// Table is an ordered list of entries.
type Table struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Drops maps item id to the quantity dropped.
type Drops map[int]int

// Total returns the sum of all entry weights.
func (t Table) Total() float64 {
	total := 0.0
	for _, e := range t.Entries {
		total += e.Weight
	}
	return total
}

// Validate reports malformed entries.
func (t Table) Validate() error {
	var errs []error
	for i, e := range t.Entries {
		if e.Weight < 0 {
			errs = append(errs, fmt.Errorf("entry %d: negative weight %v", i, e.Weight))
		}
		if e.ItemID < 0 {
			errs = append(errs, fmt.Errorf("entry %d: negative item id %d", i, e.ItemID))
		}
		if q := e.Quantity; q != nil {
			if q.Min <= 0 {
				errs = append(errs, fmt.Errorf("entry %d: quantity min must be positive, got %d", i, q.Min))
			}
			if q.Max < q.Min {
				errs = append(errs, fmt.Errorf("entry %d: quantity range %d-%d is inverted", i, q.Min, q.Max))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("loot table %q: %w", t.Name, err)
	}
	return nil
}

// Resolve rolls every entry of t once and returns the accumulated drops.
// An empty or zero-weight table yields no drops.
func Resolve(t Table, rng Rand) Drops {
	drops := Drops{}
	total := t.Total()
	if total <= 0 {
		return drops
	}
	for _, e := range t.Entries {
		if rng.Float64()*total >= e.Weight {
			continue
		}
		qty := quantity(e.Quantity, rng)
		if e.ItemID == Nothing || qty <= 0 {
			continue
		}
		drops[e.ItemID] += qty
	}
	return drops
}

func quantity(r *Range, rng Rand) int {
	if r == nil {
		return 1
	}
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Registry holds named drop tables.
type Registry struct {
	tables map[string]Table
}

// NewRegistry indexes tables by name. Later tables replace earlier ones
// with the same name.
func NewRegistry(tables ...Table) *Registry {
	r := &Registry{tables: make(map[string]Table, len(tables))}
	for _, t := range tables {
		r.tables[t.Name] = t
	}
	return r
}

// Table looks up a table by name.
func (r *Registry) Table(name string) (Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Resolve rolls the named table. ok is false when no such table exists.
func (r *Registry) Resolve(name string, rng Rand) (Drops, bool) {
	t, ok := r.tables[name]
	if !ok {
		return nil, false
	}
	return Resolve(t, rng), true
}
