package skill

import "math"

// Skill names known to the game. Combat only reads Attack, Strength and Magic.
const (
	Hitpoints    = "Hitpoints"
	Attack       = "Attack"
	Strength     = "Strength"
	Defence      = "Defence"
	Magic        = "Magic"
	Ranged       = "Ranged"
	Slayer       = "Slayer"
	Mining       = "Mining"
	Fishing      = "Fishing"
	Woodcutting  = "Woodcutting"
	Cooking      = "Cooking"
	Smithing     = "Smithing"
	Crafting     = "Crafting"
	Herblore     = "Herblore"
	Runecrafting = "Runecrafting"
	Thieving     = "Thieving"
	Sorcery      = "Sorcery"
)

// DefaultNames is the display order of a new player's skills.
var DefaultNames = []string{
	Hitpoints, Attack, Strength, Defence, Magic, Ranged, Slayer,
	Mining, Fishing, Woodcutting, Cooking, Smithing, Crafting,
	Herblore, Runecrafting, Thieving, Sorcery,
}

// Skill is one trainable statistic.
type Skill struct {
	Name       string
	Level      int
	Experience float64
}

// LevelUp is emitted once for every level a skill gains.
type LevelUp struct {
	Skill string
	Level int
}

// New returns a level 1 skill with no experience.
func New(name string) *Skill {
	return &Skill{Name: name, Level: 1}
}

// AddExperience adds amount and advances the level as far as the new total
// allows. Non-positive and NaN amounts are ignored.
func (s *Skill) AddExperience(amount float64) []LevelUp {
	if math.IsNaN(amount) || amount <= 0 {
		return nil
	}
	s.Experience = math.Min(s.Experience+amount, MaxExperience)

	var ups []LevelUp
	for s.Level < MaxLevel && s.Experience >= CumulativeXP(s.Level+1) {
		s.Level++
		ups = append(ups, LevelUp{Skill: s.Name, Level: s.Level})
	}
	return ups
}

// Ledger holds a player's skills by name, remembering insertion order.
type Ledger struct {
	skills map[string]*Skill
	order  []string
}

// NewLedger creates a ledger with one level 1 skill per name.
func NewLedger(names ...string) *Ledger {
	l := &Ledger{skills: make(map[string]*Skill, len(names))}
	for _, n := range names {
		l.Add(New(n))
	}
	return l
}

// NewDefaultLedger creates a ledger holding every DefaultNames skill.
func NewDefaultLedger() *Ledger { return NewLedger(DefaultNames...) }

// Add inserts s, replacing any skill with the same name.
func (l *Ledger) Add(s *Skill) {
	if _, ok := l.skills[s.Name]; !ok {
		l.order = append(l.order, s.Name)
	}
	l.skills[s.Name] = s
}

// Remove deletes the named skill. Removing an absent skill is a no-op.
func (l *Ledger) Remove(name string) {
	if _, ok := l.skills[name]; !ok {
		return
	}
	delete(l.skills, name)
	for i, n := range l.order {
		if n == name {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Get returns the named skill or nil.
func (l *Ledger) Get(name string) *Skill { return l.skills[name] }

// Has reports whether the ledger contains name.
func (l *Ledger) Has(name string) bool {
	_, ok := l.skills[name]
	return ok
}

// Names returns skill names in insertion order.
func (l *Ledger) Names() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// AddExperience credits amount to the named skill. ok is false when the
// skill does not exist.
func (l *Ledger) AddExperience(name string, amount float64) (ups []LevelUp, ok bool) {
	s := l.skills[name]
	if s == nil {
		return nil, false
	}
	return s.AddExperience(amount), true
}

// TotalLevel sums the levels of all skills.
func (l *Ledger) TotalLevel() int {
	total := 0
	for _, s := range l.skills {
		total += s.Level
	}
	return total
}
